// Package schedule re-fetches a listing on a fixed interval.
package schedule

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/storefront-discovery/internal/metrics"
)

// ErrInterval is returned when the refresh interval is not positive.
var ErrInterval = errors.New("refresh interval must be positive")

// Refresher re-fetches the current page without resetting it.
type Refresher interface {
	Refresh() error
}

// Scheduler periodically refreshes a listing.
type Scheduler struct {
	cron   *cron.Cron
	target Refresher
	log    *slog.Logger
}

// New creates a Scheduler that calls target.Refresh every interval.
func New(target Refresher, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, ErrInterval
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:   c,
		target: target,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runRefresh); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled refreshes.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once a running
// refresh has returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRefresh() {
	metrics.ListingRefreshesTotal.Inc()
	s.log.Debug("scheduled refresh starting")
	if err := s.target.Refresh(); err != nil {
		s.log.Warn("scheduled refresh failed", "error", err)
	}
}
