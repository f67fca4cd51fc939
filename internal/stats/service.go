// Package stats holds the cache gate in front of the fetch-and-aggregate
// cycle and the HTTP handler that serves its result.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	v1 "github.com/dab97/stats-rgsu/internal/api/v1"
	"github.com/dab97/stats-rgsu/internal/core/aggregation"
	"github.com/dab97/stats-rgsu/internal/core/storage"
	"golang.org/x/sync/singleflight"
)

// FreshnessWindow is how long a computed snapshot is served without
// touching the source.
const FreshnessWindow = 2 * time.Minute

const refreshKey = "stats"

// Log reasons for falling back to synthetic data.
const (
	reasonNotConfigured = "not_configured"
	reasonUnavailable   = "unavailable"
)

// FallbackGenerator produces synthetic applications when the source cannot.
type FallbackGenerator interface {
	Generate(now time.Time) []v1.Application
}

// Snapshot is one cached aggregation together with its encoded body.
type Snapshot struct {
	Stats      v1.Stats
	Body       []byte
	ComputedAt time.Time
}

// ETag is a strong validator derived from the computation time.
func (s *Snapshot) ETag() string {
	return fmt.Sprintf(`"%d"`, s.ComputedAt.UnixMilli())
}

// Service is the cache gate. It is safe for concurrent use; at most one
// fetch-and-aggregate cycle runs at a time.
type Service struct {
	source   storage.ApplicationSource
	fallback FallbackGenerator

	mu       sync.RWMutex
	snapshot *Snapshot

	refreshGroup singleflight.Group

	nowFn   func() time.Time
	marshal func(v any) ([]byte, error)
}

// NewService creates a cache gate over source. A nil source behaves as an
// unconfigured one.
func NewService(source storage.ApplicationSource, fallback FallbackGenerator) *Service {
	return &Service{
		source:   source,
		fallback: fallback,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
		marshal: json.Marshal,
	}
}

// Current returns the cached snapshot while it is fresh, otherwise runs a
// new cycle. force skips the freshness check.
func (s *Service) Current(ctx context.Context, force bool) (*Snapshot, error) {
	if !force {
		if snap := s.fresh(); snap != nil {
			slog.Debug("[StatsCache] Serving cached snapshot", "computed_at", snap.ComputedAt)
			return snap, nil
		}
	}

	result, err, _ := s.refreshGroup.Do(refreshKey, func() (interface{}, error) {
		// Another caller may have refreshed while we waited for the flight.
		if !force {
			if snap := s.fresh(); snap != nil {
				return snap, nil
			}
		}
		// The cycle runs to completion even if the triggering request goes away.
		return s.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Peek returns the last snapshot regardless of age, or nil.
func (s *Service) Peek() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Service) fresh() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil
	}
	if s.nowFn().Sub(s.snapshot.ComputedAt) < FreshnessWindow {
		return s.snapshot
	}
	return nil
}

func (s *Service) refresh(ctx context.Context) (*Snapshot, error) {
	started := time.Now()
	now := s.nowFn()

	apps, dataSource := s.load(ctx, now)

	result := aggregation.Aggregate(apps, now)
	result.DataSource = dataSource

	body, err := s.marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}

	snap := &Snapshot{Stats: result, Body: body, ComputedAt: now}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	slog.Info("[StatsCache] Snapshot refreshed",
		"total_applications", result.TotalApplications,
		"data_source", dataSource,
		"duration", time.Since(started),
	)
	return snap, nil
}

// load fetches live applications, degrading to the fallback dataset on any
// source failure.
func (s *Service) load(ctx context.Context, now time.Time) ([]v1.Application, v1.DataSource) {
	if s.source == nil {
		slog.Warn("[StatsCache] Using fallback data", "reason", reasonNotConfigured)
		return s.fallback.Generate(now), v1.DataSourceFallback
	}

	apps, err := s.source.FetchApplications(ctx)
	if err == nil {
		slog.Info("[StatsCache] Fetched applications", "count", len(apps))
		return apps, v1.DataSourceLive
	}

	reason := reasonUnavailable
	if errors.Is(err, storage.ErrNotConfigured) {
		reason = reasonNotConfigured
	}
	slog.Warn("[StatsCache] Using fallback data", "reason", reason, "error", err)
	return s.fallback.Generate(now), v1.DataSourceFallback
}
