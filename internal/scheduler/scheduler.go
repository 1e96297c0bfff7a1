package scheduler

import (
	"context"
	"log/slog"
	"time"
)

type CycleRunner interface {
	RunCycle(ctx context.Context) int
}

// Scheduler drives refresh cycles on a fixed interval and on explicit
// request. At most one cycle runs at a time: an explicit trigger that
// arrives mid-cycle joins the in-flight cycle and reports its result.
type Scheduler struct {
	runner   CycleRunner
	interval time.Duration
	guard    *Guard
}

func New(runner CycleRunner, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		guard:    NewGuard(),
	}
}

// Run blocks, triggering a cycle every interval until ctx is cancelled.
// An immediate first cycle populates the store on startup.
func (s *Scheduler) Run(ctx context.Context) {
	s.TriggerNow(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.TriggerNow(ctx)
		}
	}
}

// TriggerNow runs a refresh cycle, or joins one already in flight, and
// returns the number of points that cycle wrote. A joiner whose context
// expires stops waiting, but the shared cycle keeps running.
func (s *Scheduler) TriggerNow(ctx context.Context) (int, error) {
	owner, done := s.guard.TryBegin()
	if !owner {
		select {
		case <-done:
			return s.guard.Result(), nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	// A started cycle runs to completion even if the triggering caller
	// goes away.
	count := s.runner.RunCycle(context.WithoutCancel(ctx))
	s.guard.Complete(count)
	return count, nil
}
