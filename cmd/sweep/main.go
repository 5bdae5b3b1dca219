package main

import (
	"context"

	"lotus/config"
	"lotus/di"
	"lotus/shared/logger"

	"github.com/rs/zerolog/log"
)

// One-shot membership expiry sweep, for cron environments where the in-process
// scheduler is not running.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	membership := di.InitializeMembershipService()

	count, err := membership.ExpireStaleGrants(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("membership expiry sweep failed")
	}

	log.Info().Int64("expired", count).Msg("membership expiry sweep finished")
}
