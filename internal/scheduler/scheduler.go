// Package scheduler runs the periodic maintenance jobs the service needs;
// today that is only the holiday-cache refresh.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"wastesync-backend-go/internal/core"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron       *cron.Cron
	holidaySvc core.HolidayService
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(holidaySvc core.HolidayService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:       cron.New(),
		holidaySvc: holidaySvc,
		logger:     logger,
	}
}

// Start registers the holiday refresh on the given cron expression and
// starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.holidaySvc.Refresh(ctx); err != nil {
			s.logger.Error("holiday cache refresh failed", zap.Error(err))
			return
		}
		s.logger.Info("holiday cache refreshed")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("holiday_refresh_cron", spec))
	return nil
}

// Stop halts the cron loop and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
