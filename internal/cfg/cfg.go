package cfg

import (
	"os"
	"time"

	"github.com/DRSN-tech/botstore-backend/pkg/e"
	"github.com/DRSN-tech/botstore-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http     *HTTPConfig
	Store    *StoreCfg
	Admin    *AdminCfg
	Checkout *CheckoutCfg
	Logger   *LoggerCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreCfg struct {
	Path        string        // путь к файлу bbolt
	FileMode    os.FileMode   // права на файл хранилища
	OpenTimeout time.Duration // таймаут захвата file lock
}

// AdminCfg — фиксированная пара логин/пароль администратора.
// Заглушка вместо настоящей аутентификации, не для продакшена.
type AdminCfg struct {
	Username string
	Password string
}

type CheckoutCfg struct {
	PhoneNumber string // номер WhatsApp магазина
	BaseURL     string
}

type LoggerCfg struct {
	Mode     string
	Filename string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	store, err := loadStoreCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Store:    store,
		Admin:    loadAdminCfg(),
		Checkout: loadCheckoutCfg(),
		Logger:   LoadLoggerCfg(),
	}, nil
}

// LoadLoggerCfg читается до инициализации логгера, поэтому не логирует.
func LoadLoggerCfg() *LoggerCfg {
	const defaultMode = "development"

	return &LoggerCfg{
		Mode:     getEnvOrDefault("LOG_MODE", defaultMode),
		Filename: getEnv("LOG_FILE"),
	}
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadStoreCfg(log logger.Logger) (*StoreCfg, error) {
	const (
		defaultPath        = "botstore.db"
		defaultFileMode    = os.FileMode(0o600)
		defaultOpenTimeout = 1 * time.Second
	)

	openTimeout, err := parseDurationEnv("STORE_OPEN_TIMEOUT", defaultOpenTimeout)
	if err != nil {
		log.Errorf(err, "invalid STORE_OPEN_TIMEOUT")
		return nil, err
	}

	return &StoreCfg{
		Path:        getEnvOrDefault("STORE_PATH", defaultPath),
		FileMode:    defaultFileMode,
		OpenTimeout: openTimeout,
	}, nil
}

func loadAdminCfg() *AdminCfg {
	// Значения по умолчанию повторяют исходное приложение
	const (
		defaultUsername = "admin"
		defaultPassword = "123456"
	)

	return &AdminCfg{
		Username: getEnvOrDefault("ADMIN_USER", defaultUsername),
		Password: getEnvOrDefault("ADMIN_PASSWORD", defaultPassword),
	}
}

func loadCheckoutCfg() *CheckoutCfg {
	const (
		defaultPhone   = "+51985116690"
		defaultBaseURL = "https://wa.me"
	)

	return &CheckoutCfg{
		PhoneNumber: getEnvOrDefault("STORE_PHONE", defaultPhone),
		BaseURL:     getEnvOrDefault("WHATSAPP_BASE_URL", defaultBaseURL),
	}
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, e.Wrap(key, e.ErrIncorrectEnvVariable)
		}
		return d, nil
	}

	return defaultValue, nil
}
