package statistics

import "context"

type StatisticsService interface {
	Get(ctx context.Context, period Period) (*StatisticsResponse, error)

	// Invalidate drops cached aggregates after a mutation.
	Invalidate(ctx context.Context)
}
