package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type QuotesConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type UploadsConfig struct {
	Dir string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	CORS        CORSConfig
	Quotes      QuotesConfig
	Uploads     UploadsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(v.GetString("CORS_ORIGINS")),
		},
		Quotes: QuotesConfig{
			DefaultLimit: v.GetInt("QUOTES_DEFAULT_LIMIT"),
			MaxLimit:     v.GetInt("QUOTES_MAX_LIMIT"),
		},
		Uploads: UploadsConfig{
			Dir: v.GetString("UPLOAD_DIR"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8001
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.Quotes.DefaultLimit == 0 {
		cfg.Quotes.DefaultLimit = 100
	}
	if cfg.Quotes.MaxLimit == 0 {
		cfg.Quotes.MaxLimit = 500
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "./uploads"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Quotes.DefaultLimit > cfg.Quotes.MaxLimit {
		return fmt.Errorf("QUOTES_DEFAULT_LIMIT must not exceed QUOTES_MAX_LIMIT")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
