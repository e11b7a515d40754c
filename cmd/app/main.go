package main

import (
	"taskboard/config"
	"taskboard/di"
	"taskboard/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
