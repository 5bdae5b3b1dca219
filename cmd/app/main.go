package main

import (
	"lotus/config"
	"lotus/di"
	"lotus/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Lotus Spa Back Office API
// @version 1.0
// @description Reservation, catalog, membership and referral management for the spa back office.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	scheduler, err := di.InitializeScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize scheduler")
	}

	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	http := di.InitializeService()
	http.Serve()
}
