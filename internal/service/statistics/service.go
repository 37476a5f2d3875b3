package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"golang.org/x/sync/errgroup"
)

type StatisticsServiceImpl struct {
	statistics.StatisticsRepository
	cache statistics.StatisticsCache // nil disables caching
	now   func() time.Time
}

func NewStatisticsService(repo statistics.StatisticsRepository, cache statistics.StatisticsCache) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		StatisticsRepository: repo,
		cache:                cache,
		now:                  time.Now,
	}
}

// Get implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) Get(ctx context.Context, period statistics.Period) (*statistics.StatisticsResponse, error) {
	if period == "" {
		period = statistics.PeriodAll
	}
	if !period.Valid() {
		return nil, statistics.ErrInvalidPeriod
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, period)
		if err != nil {
			slog.Warn("statistics cache read failed", "period", period, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	since := period.Since(s.now())
	resp := &statistics.StatisticsResponse{Period: period}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.StatisticsRepository.GetPendaftarStats(gctx, since)
		if err != nil {
			return fmt.Errorf("pendaftar stats: %w", err)
		}
		resp.Pendaftar = stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.StatisticsRepository.GetAbsensiStats(gctx, since)
		if err != nil {
			return fmt.Errorf("absensi stats: %w", err)
		}
		resp.Absensi = stats
		return nil
	})

	g.Go(func() error {
		stats, err := s.StatisticsRepository.GetGenderStats(gctx, since)
		if err != nil {
			return fmt.Errorf("gender stats: %w", err)
		}
		resp.Gender = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, period, *resp); err != nil {
			slog.Warn("statistics cache write failed", "period", period, "error", err)
		}
	}

	return resp, nil
}

// Invalidate implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.Warn("statistics cache invalidation failed", "error", err)
	}
}
