package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/golibhub/golib-api/internal/store"
)

const dashboardCacheKey = "golib:dashboard:stats"

// StatsProvider supplies the dashboard aggregate. The domain store
// satisfies it.
type StatsProvider interface {
	Stats() store.Stats
}

// DashboardService produces the aggregated dashboard metrics, with a
// short-lived cache in front of the recomputation.
type DashboardService interface {
	GetStats(ctx context.Context) (store.Stats, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	provider StatsProvider
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewDashboardService builds the dashboard aggregator. A nil cache client
// degrades to recomputing on every call.
func NewDashboardService(provider StatsProvider, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		provider: provider,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (store.Stats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var stats store.Stats
			if unmarshalErr := json.Unmarshal([]byte(cached), &stats); unmarshalErr == nil {
				s.logger.Debug().Msg("dashboard cache hit")
				return stats, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	stats := s.provider.Stats()

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return stats, nil
}

// Invalidate drops the cached aggregate, typically after a mutation the
// dashboard should reflect immediately.
func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}
