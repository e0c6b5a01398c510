package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr       string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN      string        `env:"DATABASE_DSN" envDefault:""`
	ArchiveRetention time.Duration `env:"ARCHIVE_RETENTION" envDefault:"4320h"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL" envDefault:"1h"`
	RateLimit        float64       `env:"RATE_LIMIT" envDefault:"50"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	DatabaseDSN string
	RateLimit   float64
}

// ArchiveConfig модель настроек хранения архива посылок
type ArchiveConfig struct {
	Retention       time.Duration
	CleanupInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Archive ArchiveConfig
}

func NewConfig() Config {

	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		retention = pflag.DurationP("retention", "r", args.ArchiveRetention, "Archive retention window.")
		cleanup   = pflag.DurationP("cleanup", "c", args.CleanupInterval, "Archive cleanup interval.")
		limit     = pflag.Float64P("rate_limit", "q", args.RateLimit, "Request rate limit per second.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			RateLimit:   *limit,
		},
		Archive: ArchiveConfig{
			Retention:       *retention,
			CleanupInterval: *cleanup,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			RateLimit:   50,
		},
		Archive: ArchiveConfig{
			Retention:       180 * 24 * time.Hour,
			CleanupInterval: time.Hour,
		},
	}
}
