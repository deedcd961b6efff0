package state

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper calls a sweep function on a fixed interval until stopped.
type Sweeper struct {
	name     string
	interval time.Duration
	sweep    func(now time.Time) int
	now      func() time.Time
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper returns a stopped Sweeper. sweep reports how many entries it dropped.
func NewSweeper(name string, interval time.Duration, sweep func(now time.Time) int, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		name:     name,
		interval: interval,
		sweep:    sweep,
		now:      time.Now,
		logger:   logger,
	}
}

// Start launches the sweep loop. It is meant for an fx OnStart hook.
func (s *Sweeper) Start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx)

	return nil
}

// Stop ends the loop and waits for it, bounded by ctx.
func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := s.sweep(s.now()); dropped > 0 {
				s.logger.Debug("Expired entries dropped",
					slog.String("sweeper", s.name),
					slog.Int("dropped", dropped),
				)
			}
		}
	}
}
