package statistics

import (
	"context"
	"time"
)

// StatisticsRepository runs one aggregate query per dimension.
// A nil since means no lower bound.
type StatisticsRepository interface {
	GetPendaftarStats(ctx context.Context, since *time.Time) (PendaftarStats, error)
	GetAbsensiStats(ctx context.Context, since *time.Time) (AbsensiStats, error)
	GetGenderStats(ctx context.Context, since *time.Time) (GenderStats, error)
}

// StatisticsCache stores computed responses per period.
type StatisticsCache interface {
	Get(ctx context.Context, period Period) (*StatisticsResponse, error)
	Set(ctx context.Context, period Period, stats StatisticsResponse) error
	Invalidate(ctx context.Context) error
}
