package http

import (
	"net/http"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/internal/usecase"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
)

// SessionHandler обслуживает единственную пользовательскую сессию:
// вход и выход администратора, режим интерфейса, раздел админки, тему.
type SessionHandler struct {
	sessionUC usecase.SessionUC
	logger    logger.Logger
}

func NewSessionHandler(sessionUC usecase.SessionUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

func (h *SessionHandler) newSessionResponse(info *usecase.SessionInfo) *SessionResponse {
	return &SessionResponse{
		ViewMode:      string(info.ViewMode),
		AdminSection:  string(info.AdminSection),
		Authenticated: info.Authenticated,
		Theme:         string(info.Theme),
	}
}

// getSession godoc
// @Summary Состояние сессии
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *SessionHandler) getSession(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.newSessionResponse(h.sessionUC.State(r.Context())))
}

// login godoc
// @Summary Вход администратора
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Учётные данные"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /session/login [post]
func (h *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var body LoginRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.sessionUC.Login(r.Context(), body.Username, body.Password); err != nil {
		h.logger.Warnf("login rejected for user %q", body.Username)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.newSessionResponse(h.sessionUC.State(r.Context())))
}

// logout godoc
// @Summary Выход администратора
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session/logout [post]
func (h *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessionUC.Logout(r.Context())

	WriteSuccess(w, http.StatusOK, h.newSessionResponse(h.sessionUC.State(r.Context())))
}

// setViewMode godoc
// @Summary Переключение витрины и админки
// @Tags session
// @Accept json
// @Produce json
// @Param mode body ViewModeRequest true "Режим: store или admin"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /session/view [put]
func (h *SessionHandler) setViewMode(w http.ResponseWriter, r *http.Request) {
	var body ViewModeRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.sessionUC.SetViewMode(r.Context(), domain.ViewMode(body.Mode)); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.newSessionResponse(h.sessionUC.State(r.Context())))
}

// setAdminSection godoc
// @Summary Переключение раздела админки
// @Tags session
// @Accept json
// @Produce json
// @Param section body AdminSectionRequest true "Раздел: products, categories или types"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /session/section [put]
func (h *SessionHandler) setAdminSection(w http.ResponseWriter, r *http.Request) {
	var body AdminSectionRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.sessionUC.SetAdminSection(r.Context(), domain.AdminSection(body.Section)); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.newSessionResponse(h.sessionUC.State(r.Context())))
}

// setTheme godoc
// @Summary Переключение темы
// @Description Тема переживает перезапуск приложения
// @Tags session
// @Accept json
// @Produce json
// @Param theme body ThemeRequest true "Тема: light или dark"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /session/theme [put]
func (h *SessionHandler) setTheme(w http.ResponseWriter, r *http.Request) {
	var body ThemeRequest
	if err := decodeBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.sessionUC.SetTheme(r.Context(), domain.Theme(body.Theme)); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.newSessionResponse(h.sessionUC.State(r.Context())))
}
