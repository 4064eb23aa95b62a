// Package scheduler triggers generation runs on minute boundaries; the run
// service's schedule gate decides which minutes actually produce drafts.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"draftgen/internal/domain"
)

// Runner executes one generation run.
type Runner interface {
	Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error)
}

type Scheduler struct {
	runner Runner
	track  string
	logger *slog.Logger
}

func NewScheduler(runner Runner, track string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner: runner,
		track:  track,
		logger: logger,
	}
}

// Start blocks, firing a scheduled run attempt every minute until the
// context is cancelled. Off-slot attempts are cheap no-ops.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "track", s.track)

	for {
		next := time.Now().Truncate(time.Minute).Add(time.Minute)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-timer.C:
			s.fire(ctx)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	result, err := s.runner.Run(runCtx, domain.RunRequest{
		Scheduled: true,
		Track:     s.track,
	})
	if err != nil {
		s.logger.Error("scheduled run failed", "error", err)
		return
	}

	if result.Skipped && result.SkipReason == domain.SkipNotInScheduleSlot {
		return
	}

	s.logger.Info("scheduled run completed",
		"skipped", result.Skipped,
		"skip_reason", string(result.SkipReason),
		"drafts", len(result.Drafts),
		"tokens_consumed", result.TokensConsumed,
	)
}
