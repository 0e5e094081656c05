package bolt

import (
	"context"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
)

// SessionStore — обёртка над слотом темы. Остальное состояние сессии
// не переживает перезапуск процесса.
type SessionStore struct {
	repo *SlotRepo
}

func NewSessionStore(repo *SlotRepo) *SessionStore {
	return &SessionStore{repo: repo}
}

func (s *SessionStore) LoadTheme(ctx context.Context) (domain.Theme, error) {
	var theme string
	if err := s.repo.Load(ctx, SlotTheme, &theme); err != nil {
		return "", err
	}

	return domain.Theme(theme), nil
}

func (s *SessionStore) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.repo.Save(ctx, SlotTheme, string(theme))
}
