// Package warmup keeps the stats cache populated on a cron schedule so
// dashboard requests rarely wait on the upstream source.
package warmup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dab97/stats-rgsu/internal/stats"
	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = time.Minute

// Refresher is the cache gate operation the warmer drives.
type Refresher interface {
	Current(ctx context.Context, force bool) (*stats.Snapshot, error)
}

// Scheduler force-refreshes the cache on a cron schedule.
type Scheduler struct {
	schedule   string
	refresher  Refresher
	runTimeout time.Duration
	cronEngine *cron.Cron
}

// NewScheduler validates schedule (standard cron or an @every descriptor)
// and creates a warmer for refresher.
func NewScheduler(schedule string, refresher Refresher) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("warmup schedule %q: %w", schedule, err)
	}
	return &Scheduler{
		schedule:   schedule,
		refresher:  refresher,
		runTimeout: defaultRunTimeout,
		cronEngine: cron.New(cron.WithLocation(time.UTC)),
	}, nil
}

// Start warms the cache once, then on every tick of the schedule.
// Runs until context is cancelled and waits for an in-flight run to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	slog.Info("[Warmup] Starting cache warmer", "schedule", s.schedule)

	s.warm(ctx)

	if _, err := s.cronEngine.AddFunc(s.schedule, func() { s.warm(ctx) }); err != nil {
		return fmt.Errorf("register warmup job: %w", err)
	}
	s.cronEngine.Start()

	<-ctx.Done()
	slog.Info("[Warmup] Stopping (context cancelled)")
	<-s.cronEngine.Stop().Done()
	return nil
}

func (s *Scheduler) warm(parent context.Context) {
	if parent.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(parent, s.runTimeout)
	defer cancel()

	snap, err := s.refresher.Current(ctx, true)
	if err != nil {
		slog.Error("[Warmup] Cache refresh failed", "error", err)
		return
	}
	slog.Debug("[Warmup] Cache refreshed",
		"data_source", snap.Stats.DataSource,
		"total_applications", snap.Stats.TotalApplications,
	)
}
