package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr      string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN     string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret       string `env:"JWT_SECRET" envDefault:"secret"`
	AdminPassphrase string `env:"ADMIN_PASSPHRASE" envDefault:"ADMIN_SECRET_2024"`
	PayoutAddr      string `env:"PAYOUT_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr      string
	LogLevel        string
	JWTSecret       string
	AdminPassphrase string
	DatabaseDSN     string
}

// PayoutConfig модель настроек работы с платёжным шлюзом выплат
type PayoutConfig struct {
	PayoutAddr   string
	BatchSize    int
	PollInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Payout PayoutConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server     = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel   = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN        = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret     = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		passphrase = pflag.StringP("passphrase", "p", args.AdminPassphrase, "Admin signup passphrase")
		payout     = pflag.StringP("payout", "r", args.PayoutAddr, "Payout gateway address in a form host:port.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:      *server,
			LogLevel:        *logLevel,
			DatabaseDSN:     *DSN,
			JWTSecret:       *secret,
			AdminPassphrase: *passphrase,
		},
		Payout: PayoutConfig{
			PayoutAddr:   *payout,
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:      "localhost:8080",
			LogLevel:        "info",
			DatabaseDSN:     "",
			JWTSecret:       "secret",
			AdminPassphrase: "ADMIN_SECRET_2024",
		},
		Payout: PayoutConfig{
			PayoutAddr:   ":8081",
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
	}
}
