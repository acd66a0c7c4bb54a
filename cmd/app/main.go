package main

import (
	"resto/config"
	"resto/di"
	"resto/helper"
	"resto/shared/logger"

	"github.com/rs/zerolog/log"

	_ "resto/docs"
)

// @title Restaurant Reservations API
// @version 1.0
// @description Reservations, tables and seating for a single restaurant.
// @BasePath /
// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app := di.InitializeService()
	app.HTTP.Serve(app.Closers()...)
}
