package scheduler

import (
	"context"
	"fmt"

	"lotus/config"
	"lotus/internal/domains/membership/service"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Scheduler owns the periodic jobs of the application. For now that is the
// membership grant expiry sweep.
type Scheduler struct {
	inner      gocron.Scheduler
	cfg        *config.Config
	membership service.Membership
}

func New(cfg *config.Config, membership service.Membership) (*Scheduler, error) {
	inner, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		inner:      inner,
		cfg:        cfg,
		membership: membership,
	}, nil
}

// Start registers the jobs and begins running them in the background.
func (s *Scheduler) Start() error {
	_, err := s.inner.NewJob(
		gocron.CronJob(s.cfg.Membership.SweepCron, false),
		gocron.NewTask(s.sweepExpiredGrants),
		gocron.WithName("membership_expiry_sweep"),
	)
	if err != nil {
		return fmt.Errorf("failed to register membership expiry sweep: %w", err)
	}

	s.inner.Start()

	log.Info().Str("cron", s.cfg.Membership.SweepCron).Msg("scheduler started")

	return nil
}

func (s *Scheduler) Shutdown() error {
	if err := s.inner.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}

	return nil
}

func (s *Scheduler) sweepExpiredGrants() {
	count, err := s.membership.ExpireStaleGrants(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("membership expiry sweep failed")

		return
	}

	log.Info().Int64("expired", count).Msg("membership expiry sweep finished")
}
