package main

import (
	"context"

	"courtside/config"
	"courtside/di"
	"courtside/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	go app.Push.Run(context.Background())

	app.HTTP.Serve()
}
