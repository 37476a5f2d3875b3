package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newService(repo *mocks.StatisticsRepository, cache statistics.StatisticsCache) *StatisticsServiceImpl {
	svc := NewStatisticsService(repo, cache).(*StatisticsServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func expectQueries(repo *mocks.StatisticsRepository) {
	repo.On("GetPendaftarStats", mock.Anything, mock.Anything).
		Return(statistics.PendaftarStats{Total: 10, Pending: 4, Diterima: 5, Ditolak: 1, TanpaKTA: 2}, nil)
	repo.On("GetAbsensiStats", mock.Anything, mock.Anything).
		Return(statistics.AbsensiStats{Total: 20, Hadir: 15, Izin: 2, Sakit: 1, Alpha: 2}, nil)
	repo.On("GetGenderStats", mock.Anything, mock.Anything).
		Return(statistics.GenderStats{LakiLaki: 6, Perempuan: 4}, nil)
}

func TestGet_WithoutCache(t *testing.T) {
	repo := &mocks.StatisticsRepository{}
	expectQueries(repo)
	svc := newService(repo, nil)

	resp, err := svc.Get(context.Background(), statistics.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, statistics.PeriodMonth, resp.Period)
	assert.Equal(t, int64(10), resp.Pendaftar.Total)
	assert.Equal(t, int64(15), resp.Absensi.Hadir)
	assert.Equal(t, int64(4), resp.Gender.Perempuan)

	since := fixedNow.AddDate(0, -1, 0)
	repo.AssertCalled(t, "GetPendaftarStats", mock.Anything, &since)
}

func TestGet_DefaultsToAll(t *testing.T) {
	repo := &mocks.StatisticsRepository{}
	expectQueries(repo)
	svc := newService(repo, nil)

	resp, err := svc.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, statistics.PeriodAll, resp.Period)
	repo.AssertCalled(t, "GetGenderStats", mock.Anything, (*time.Time)(nil))
}

func TestGet_InvalidPeriod(t *testing.T) {
	svc := newService(&mocks.StatisticsRepository{}, nil)

	_, err := svc.Get(context.Background(), "decade")
	assert.ErrorIs(t, err, statistics.ErrInvalidPeriod)
}

func TestGet_QueryFailure(t *testing.T) {
	repo := &mocks.StatisticsRepository{}
	repo.On("GetPendaftarStats", mock.Anything, mock.Anything).Return(statistics.PendaftarStats{}, errors.New("boom"))
	repo.On("GetAbsensiStats", mock.Anything, mock.Anything).Return(statistics.AbsensiStats{}, nil)
	repo.On("GetGenderStats", mock.Anything, mock.Anything).Return(statistics.GenderStats{}, nil)
	svc := newService(repo, nil)

	_, err := svc.Get(context.Background(), statistics.PeriodWeek)
	assert.ErrorContains(t, err, "pendaftar stats")
}

func TestGet_CacheHitSkipsQueries(t *testing.T) {
	repo := &mocks.StatisticsRepository{}
	cache := &mocks.StatisticsCache{}
	cached := &statistics.StatisticsResponse{Period: statistics.PeriodYear, Gender: statistics.GenderStats{LakiLaki: 1}}
	cache.On("Get", mock.Anything, statistics.PeriodYear).Return(cached, nil)
	svc := newService(repo, cache)

	resp, err := svc.Get(context.Background(), statistics.PeriodYear)
	require.NoError(t, err)
	assert.Same(t, cached, resp)
	repo.AssertNotCalled(t, "GetPendaftarStats", mock.Anything, mock.Anything)
}

func TestGet_CacheMissStoresResult(t *testing.T) {
	repo := &mocks.StatisticsRepository{}
	expectQueries(repo)
	cache := &mocks.StatisticsCache{}
	cache.On("Get", mock.Anything, statistics.PeriodAll).Return(nil, nil)
	cache.On("Set", mock.Anything, statistics.PeriodAll, mock.Anything).Return(nil)
	svc := newService(repo, cache)

	_, err := svc.Get(context.Background(), statistics.PeriodAll)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestInvalidate(t *testing.T) {
	cache := &mocks.StatisticsCache{}
	cache.On("Invalidate", mock.Anything).Return(errors.New("redis down"))
	svc := newService(&mocks.StatisticsRepository{}, cache)

	assert.NotPanics(t, func() { svc.Invalidate(context.Background()) })
	cache.AssertExpectations(t)

	assert.NotPanics(t, func() { newService(&mocks.StatisticsRepository{}, nil).Invalidate(context.Background()) })
}
