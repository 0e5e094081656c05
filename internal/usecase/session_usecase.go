package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/DRSN-tech/botstore-backend/internal/domain"
	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/asaskevich/EventBus"
)

// SessionUseCase — состояние единственной пользовательской сессии:
// режим интерфейса, раздел админки, флаг аутентификации, тема.
// Из всего состояния переживает перезапуск только тема.
type SessionUseCase struct {
	store    SessionStore
	verifier CredentialVerifier
	bus      EventBus.Bus
	logger   logger.Logger

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionUC(ctx context.Context, store SessionStore, verifier CredentialVerifier,
	bus EventBus.Bus, logger logger.Logger) *SessionUseCase {
	s := &SessionUseCase{
		store:    store,
		verifier: verifier,
		bus:      bus,
		logger:   logger,
		session:  *domain.NewSession(),
	}

	theme, err := store.LoadTheme(ctx)
	if err != nil {
		if !errors.Is(err, e.ErrSlotNotFound) {
			logger.Warnf("slot theme unreadable, using light theme: %v", err)
		}
	} else if theme == domain.ThemeLight || theme == domain.ThemeDark {
		s.session.Theme = theme
	}

	return s
}

func (s *SessionUseCase) State(ctx context.Context) *SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NewSessionInfo(&s.session)
}

func (s *SessionUseCase) IsAuthenticated(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Authenticated
}

// Login проверяет учётные данные через подключаемый верификатор.
// Успех переводит сессию в админку; неудача оставляет её без изменений.
func (s *SessionUseCase) Login(ctx context.Context, username, password string) error {
	const op = "SessionUseCase.Login"

	if !s.verifier.Verify(username, password) {
		return e.Wrap(op, e.ErrInvalidCredentials)
	}

	s.mu.Lock()
	s.session.Authenticated = true
	s.session.ViewMode = domain.ViewModeAdmin
	s.session.AdminSection = domain.AdminSectionProducts
	s.mu.Unlock()

	s.bus.Publish(TopicSessionChanged)

	return nil
}

// Logout сбрасывает флаг аутентификации и возвращает витрину.
// Фильтры витрины сбрасывает сам потребитель: эндпоинт фильтрации без состояния.
func (s *SessionUseCase) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session.Authenticated = false
	s.session.ViewMode = domain.ViewModeStore
	s.session.AdminSection = domain.AdminSectionProducts
	s.mu.Unlock()

	s.bus.Publish(TopicSessionChanged)
}

// SetViewMode переключает витрину и админку.
// Вход в админку без аутентификации отклоняется.
func (s *SessionUseCase) SetViewMode(ctx context.Context, mode domain.ViewMode) error {
	const op = "SessionUseCase.SetViewMode"

	if mode != domain.ViewModeStore && mode != domain.ViewModeAdmin {
		return e.Wrap(op, e.ErrInvalidViewMode)
	}

	s.mu.Lock()
	if mode == domain.ViewModeAdmin && !s.session.Authenticated {
		s.mu.Unlock()
		return e.Wrap(op, e.ErrNotAuthenticated)
	}

	s.session.ViewMode = mode
	if mode == domain.ViewModeAdmin {
		s.session.AdminSection = domain.AdminSectionProducts
	}
	s.mu.Unlock()

	s.bus.Publish(TopicSessionChanged)

	return nil
}

func (s *SessionUseCase) SetAdminSection(ctx context.Context, section domain.AdminSection) error {
	const op = "SessionUseCase.SetAdminSection"

	switch section {
	case domain.AdminSectionProducts, domain.AdminSectionCategories, domain.AdminSectionTypes:
	default:
		return e.Wrap(op, e.ErrInvalidAdminSection)
	}

	s.mu.Lock()
	s.session.AdminSection = section
	s.mu.Unlock()

	s.bus.Publish(TopicSessionChanged)

	return nil
}

// SetTheme меняет тему и сбрасывает её в слот.
func (s *SessionUseCase) SetTheme(ctx context.Context, theme domain.Theme) error {
	const op = "SessionUseCase.SetTheme"

	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return e.Wrap(op, e.ErrInvalidTheme)
	}

	s.mu.Lock()
	s.session.Theme = theme
	if err := s.store.SaveTheme(ctx, theme); err != nil {
		s.logger.Warnf("failed to persist theme slot: %v", e.Wrap(op, err))
	}
	s.mu.Unlock()

	s.bus.Publish(TopicSessionChanged)

	return nil
}
