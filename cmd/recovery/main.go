package main

import (
	"github.com/denmor86/recovery-authority/internal/app"
	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/logger"
)

func main() {
	config := config.NewConfig()

	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	app.Run(config)
}
