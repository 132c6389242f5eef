package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Sweeper removes idle sessions and reports how many were dropped.
type Sweeper interface {
	EvictIdle(ctx context.Context) (int, error)
}

// Scheduler runs the session sweep on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	spec    string
	logger  *slog.Logger
}

func New(spec string, sweeper Sweeper, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		spec:    spec,
		logger:  logger,
	}
}

// Start registers the sweep job and starts the cron runner. An invalid
// spec is reported before anything runs.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) })
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Sweep runs one eviction pass.
func (s *Scheduler) Sweep(ctx context.Context) {
	n, err := s.sweeper.EvictIdle(ctx)
	if err != nil {
		s.logger.Error("session sweep error", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.logger.Info("idle sessions evicted", slog.Int("count", n))
	} else {
		s.logger.Debug("session sweep found nothing to evict")
	}
}

// Stop halts the runner and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
