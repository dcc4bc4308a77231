// Package scheduler runs the periodic background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 30 * time.Second

// KeyRateRefresher reloads the cached reference rate
type KeyRateRefresher interface {
	Refresh(ctx context.Context) (float64, error)
}

// Scheduler wraps a cron runner whose jobs recover from panics and never overlap
type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Logger
}

// New creates a stopped scheduler
func New(log *logrus.Logger) *Scheduler {
	logger := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		log:  log,
	}
}

// AddKeyRateRefresh schedules r.Refresh on the given cron spec
func (s *Scheduler) AddKeyRateRefresh(spec string, r KeyRateRefresher) error {
	if _, err := s.cron.AddFunc(spec, s.keyRateJob(r)); err != nil {
		return fmt.Errorf("failed to schedule key rate refresh %q: %w", spec, err)
	}
	s.log.Infof("Key rate refresh scheduled: %s", spec)
	return nil
}

func (s *Scheduler) keyRateJob(r KeyRateRefresher) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if _, err := r.Refresh(ctx); err != nil {
			s.log.Warnf("Key rate refresh failed: %v", err)
		}
	}
}

// Jobs returns the number of scheduled jobs
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and returns a context that is done once running jobs finish
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
