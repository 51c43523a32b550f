package main

import (
	"glamp/config"
	"glamp/di"
	"glamp/shared/logger"
)

// @title Glamp API
// @version 1.0
// @description Booking and finance back office for the glamping site.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
