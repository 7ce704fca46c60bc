// Package sweeper runs periodic background tasks that expire time-bounded
// state, decoupled from request handling.
package sweeper

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Task performs one bounded unit of sweep work against the store. now is the
// sweep's notion of current time, injected for tests.
type Task func(ctx context.Context, now time.Time) error

// Metrics counts ticks and failures. Optional.
type Metrics interface {
	RecordSweepTick(sweeper string)
	RecordSweepFailure(sweeper string)
}

// Sweeper runs a Task on a fixed interval until the context is cancelled.
// A tick that is still running when the next one is due makes the next one a
// no-op rather than an overlapping run. Errors and panics are contained so
// the timer keeps going.
type Sweeper struct {
	name     string
	interval time.Duration
	task     Task
	now      func() time.Time
	metrics  Metrics
	running  atomic.Bool
}

func New(name string, interval time.Duration, task Task) *Sweeper {
	return &Sweeper{
		name:     name,
		interval: interval,
		task:     task,
		now:      time.Now,
	}
}

// WithMetrics attaches a tick/failure recorder.
func (s *Sweeper) WithMetrics(m Metrics) *Sweeper {
	s.metrics = m
	return s
}

// Start blocks until ctx is cancelled. A cancellation before the first tick
// exits without attempting any work.
func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("sweeper started", zap.String("sweeper", s.name), zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sweeper", zap.String("sweeper", s.name))
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		zap.L().Warn("previous sweep still running, skipping tick", zap.String("sweeper", s.name))
		return
	}
	defer s.running.Store(false)

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("sweep tick panicked", zap.String("sweeper", s.name), zap.Any("panic", r))
			s.recordFailure()
		}
	}()

	if err := s.task(ctx, s.now()); err != nil {
		zap.L().Error("sweep tick failed", zap.String("sweeper", s.name), zap.Error(err))
		s.recordFailure()
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSweepTick(s.name)
	}
}

func (s *Sweeper) recordFailure() {
	if s.metrics != nil {
		s.metrics.RecordSweepFailure(s.name)
	}
}
