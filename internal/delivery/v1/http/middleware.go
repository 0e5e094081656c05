package http

import (
	"net/http"

	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
)

// RequireAdmin пропускает запрос только при аутентифицированной сессии.
// Сессия одна на процесс, поэтому токены и куки не нужны.
func RequireAdmin(sessionUC usecase.SessionUC, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionUC.IsAuthenticated(r.Context()) {
				logger.Warnf("admin endpoint %s rejected: not authenticated", r.URL.Path)
				WriteError(w, e.ErrNotAuthenticated)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
