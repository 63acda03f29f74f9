package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"
)

const scanInterval = 24 * time.Hour

// ScanJob is what the scheduler runs; errors are the job's to log.
type ScanJob func(ctx context.Context)

// DailyScanScheduler runs one job at the vendor's preferred time of day.
// At most one schedule is active; rescheduling replaces it.
type DailyScanScheduler struct {
	prefs  shared.PreferencesRepository
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.Mutex
	job    ScanJob
	cancel context.CancelFunc
}

func NewDailyScanScheduler(prefs shared.PreferencesRepository, clk clock.Clock, logger *slog.Logger) *DailyScanScheduler {
	return &DailyScanScheduler{prefs: prefs, clock: clk, logger: logger}
}

// NextRun is the first hour:minute strictly after now, in now's location.
func NextRun(now time.Time, hour, minute int) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// Schedule arms job according to the stored preferences and returns a
// canceller. When the daily scan is disabled nothing runs and the canceller
// is a no-op.
func (s *DailyScanScheduler) Schedule(ctx context.Context, job ScanJob) (cancel func()) {
	s.mu.Lock()
	s.job = job
	s.mu.Unlock()
	return s.arm(s.prefs.Get(ctx))
}

// PreferencesChanged re-arms the current job with the new settings.
func (s *DailyScanScheduler) PreferencesChanged(_ context.Context, p notification.Preferences) {
	s.mu.Lock()
	hasJob := s.job != nil
	s.mu.Unlock()
	if hasJob {
		s.arm(p)
	}
}

// Stop cancels whatever is armed.
func (s *DailyScanScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *DailyScanScheduler) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// arm replaces the active schedule. The old loop is cancelled and the new one
// installed under one lock so concurrent re-arms leave exactly one loop.
func (s *DailyScanScheduler) arm(p notification.Preferences) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	if !p.DailyScanEnabled {
		s.logger.Info("daily scan disabled")
		return func() {}
	}

	hour, minute, err := notification.ParseScanTime(p.DailyScanTime)
	if err != nil {
		s.logger.Warn("invalid daily scan time, using default",
			"value", p.DailyScanTime, "default", notification.DefaultDailyScanTime)
		hour, minute, _ = notification.ParseScanTime(notification.DefaultDailyScanTime)
	}

	now := s.clock.Now()
	next := NextRun(now, hour, minute)
	delay := next.Sub(now)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.logger.Info("daily scan scheduled", "next_run", next, "delay", delay)
	go s.loop(ctx, s.job, delay)
	return cancel
}

func (s *DailyScanScheduler) loop(ctx context.Context, job ScanJob, delay time.Duration) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	job(ctx)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job(ctx)
		}
	}
}
