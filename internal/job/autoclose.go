// Package job runs background maintenance over the task store.
package job

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultInterval is the period between two scheduled sweeps.
const DefaultInterval = 15 * time.Minute

// OverdueCloser marks overdue tasks done and returns their identifiers.
type OverdueCloser interface {
	CloseOverdue(ctx context.Context, now time.Time) ([]string, error)
}

// Summary reports the outcome of one sweep.
type Summary struct {
	ClosedCount int       `json:"closed_count"`
	ClosedIDs   []string  `json:"closed_ids"`
	Timestamp   time.Time `json:"timestamp"`
}

type Sweeper struct {
	store  OverdueCloser
	logger *log.Logger
	now    func() time.Time
}

type Option func(*Sweeper)

func WithClock(now func() time.Time) Option {
	return func(s *Sweeper) { s.now = now }
}

func NewSweeper(store OverdueCloser, logger *log.Logger, opts ...Option) *Sweeper {
	s := &Sweeper{store: store, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sweep closes every task whose deadline is strictly before now and whose
// status is not done. Running it twice in a row closes nothing the second
// time.
func (s *Sweeper) Sweep(ctx context.Context) (Summary, error) {
	now := s.now().UTC()
	ids, err := s.store.CloseOverdue(ctx, now)
	if err != nil {
		return Summary{}, err
	}
	if ids == nil {
		ids = []string{}
	}

	summary := Summary{ClosedCount: len(ids), ClosedIDs: ids, Timestamp: now}
	if summary.ClosedCount == 0 {
		s.logger.Info("no overdue tasks to close")
	} else {
		s.logger.Info("auto-closed overdue task(s)", "count", summary.ClosedCount, "ids", ids)
	}
	return summary, nil
}

// Run sweeps once immediately and then every interval until ctx is done.
// A failed sweep is logged and the next tick proceeds normally.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.logger.Info("⏰ Autoclose scheduler started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("autoclose sweep failed", "err", err)
		}
		select {
		case <-ctx.Done():
			s.logger.Info("🛑 Autoclose scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}
