// Package mocks holds testify mocks of the domain repositories shared by service tests.
package mocks

import (
	"context"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]user.User), args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

type PendaftarRepository struct {
	mock.Mock
}

func (m *PendaftarRepository) List(ctx context.Context, filter pendaftar.PendaftarFilter) ([]pendaftar.Pendaftar, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]pendaftar.Pendaftar), args.Get(1).(int64), args.Error(2)
}

func (m *PendaftarRepository) GetByID(ctx context.Context, id string) (pendaftar.Pendaftar, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pendaftar.Pendaftar), args.Error(1)
}

func (m *PendaftarRepository) GetByIDForUpdate(ctx context.Context, id string) (pendaftar.Pendaftar, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pendaftar.Pendaftar), args.Error(1)
}

func (m *PendaftarRepository) UpdateStatus(ctx context.Context, id string, status pendaftar.Status, nomorKTA *string) error {
	return m.Called(ctx, id, status, nomorKTA).Error(0)
}

func (m *PendaftarRepository) SetNomorKTA(ctx context.Context, id string, nomorKTA string) error {
	return m.Called(ctx, id, nomorKTA).Error(0)
}

func (m *PendaftarRepository) NextKTASequence(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func (m *PendaftarRepository) ExistsByNomorKTA(ctx context.Context, nomorKTA string) (bool, error) {
	args := m.Called(ctx, nomorKTA)
	return args.Bool(0), args.Error(1)
}

type AbsensiRepository struct {
	mock.Mock
}

func (m *AbsensiRepository) List(ctx context.Context, filter absensi.AbsensiFilter) ([]absensi.Absensi, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]absensi.Absensi), args.Get(1).(int64), args.Error(2)
}

type StatisticsRepository struct {
	mock.Mock
}

func (m *StatisticsRepository) GetPendaftarStats(ctx context.Context, since *time.Time) (statistics.PendaftarStats, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(statistics.PendaftarStats), args.Error(1)
}

func (m *StatisticsRepository) GetAbsensiStats(ctx context.Context, since *time.Time) (statistics.AbsensiStats, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(statistics.AbsensiStats), args.Error(1)
}

func (m *StatisticsRepository) GetGenderStats(ctx context.Context, since *time.Time) (statistics.GenderStats, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(statistics.GenderStats), args.Error(1)
}

type StatisticsCache struct {
	mock.Mock
}

func (m *StatisticsCache) Get(ctx context.Context, period statistics.Period) (*statistics.StatisticsResponse, error) {
	args := m.Called(ctx, period)
	stats, _ := args.Get(0).(*statistics.StatisticsResponse)
	return stats, args.Error(1)
}

func (m *StatisticsCache) Set(ctx context.Context, period statistics.Period, stats statistics.StatisticsResponse) error {
	return m.Called(ctx, period, stats).Error(0)
}

func (m *StatisticsCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Transactor runs fn directly on the caller's context.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

// StatisticsInvalidator counts invalidations.
type StatisticsInvalidator struct {
	Calls int
}

func (s *StatisticsInvalidator) Invalidate(ctx context.Context) {
	s.Calls++
}
