package auth

import "github.com/DRSN-tech/botstore-backend/internal/cfg"

// StaticVerifier сравнивает учётные данные с фиксированной парой из
// конфигурации. Это сознательная заглушка: без хеширования, без хранения
// сессий, без ограничения попыток. Не использовать в продакшене.
type StaticVerifier struct {
	cfg *cfg.AdminCfg
}

func NewStaticVerifier(cfg *cfg.AdminCfg) *StaticVerifier {
	return &StaticVerifier{cfg: cfg}
}

// Verify — точное сравнение строк, как в исходном приложении.
func (v *StaticVerifier) Verify(username, password string) bool {
	return username == v.cfg.Username && password == v.cfg.Password
}
