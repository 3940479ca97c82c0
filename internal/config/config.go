package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	RunAddress  string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Auth settings
	AuthSecret string        `env:"AUTH_SECRET"`
	Base64Salt string        `env:"BASE64_SALT"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"`

	// Static admin, пересоздаётся при каждом старте
	StaticAdminUsername string `env:"STATIC_ADMIN_USERNAME"`
	StaticAdminPassword string `env:"STATIC_ADMIN_PASSWORD"`

	// Uploads settings
	UploadsDir      string `env:"UPLOADS_DIR"`
	UploadMaxSizeMB int    `env:"UPLOAD_MAX_MB"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "адрес и порт запуска сервиса")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.Base64Salt, "salt", cfg.Base64Salt, "base64-кодированная соль для Argon2")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "срок действия JWT токена")
	flag.StringVar(&cfg.UploadsDir, "uploads-dir", cfg.UploadsDir, "каталог хранилища медиа")
	flag.IntVar(&cfg.UploadMaxSizeMB, "upload-max-mb", cfg.UploadMaxSizeMB, "максимальный размер загрузки, МБ")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server-url", cfg.ServerURL, "URL сервера folkers (для клиента)")
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "путь к файлу auth токена (клиент)")
	flag.BoolVar(&cfg.Version, "version", false, "вывести версию и выйти")

	flag.Parse()

	// Defaults
	if cfg.RunAddress == "" {
		cfg.RunAddress = "0.0.0.0:3001"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 2 * time.Hour
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "./uploads"
	}
	if cfg.UploadMaxSizeMB <= 0 {
		cfg.UploadMaxSizeMB = 50
	}
	if cfg.ServerURL == "" {
		if cfg.EnableHTTPS {
			cfg.ServerURL = "https://localhost:3001"
		} else {
			cfg.ServerURL = "http://localhost:3001"
		}
	}

	return cfg
}
