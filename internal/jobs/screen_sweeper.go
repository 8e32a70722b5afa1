package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper drops idle state and reports how much was removed.
type Sweeper interface {
	Sweep() int
}

// ScreenSweeper periodically evicts screens whose session went idle.
type ScreenSweeper struct {
	screens  Sweeper
	interval time.Duration
}

// NewScreenSweeper creates a new screen sweeper.
func NewScreenSweeper(screens Sweeper, interval time.Duration) *ScreenSweeper {
	return &ScreenSweeper{screens: screens, interval: interval}
}

// Start begins the background sweep loop. It returns when ctx is cancelled.
func (s *ScreenSweeper) Start(ctx context.Context) {
	slog.Info("screen sweeper started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("screen sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *ScreenSweeper) sweep() {
	if n := s.screens.Sweep(); n > 0 {
		slog.Debug("idle screens removed", slog.Int("count", n))
	}
}
