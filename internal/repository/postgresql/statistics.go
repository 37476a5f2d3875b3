package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/database"
)

type statisticsRepository struct {
	db *database.DB
}

func NewStatisticsRepository(db *database.DB) statistics.StatisticsRepository {
	return &statisticsRepository{db: db}
}

// GetPendaftarStats implements statistics.StatisticsRepository.
func (r *statisticsRepository) GetPendaftarStats(ctx context.Context, since *time.Time) (statistics.PendaftarStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'diterima' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'ditolak' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'diterima' AND nomor_kta IS NULL THEN 1 ELSE 0 END), 0)
		FROM pendaftar
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
	`
	var s statistics.PendaftarStats
	if err := q.QueryRow(ctx, query, since).Scan(&s.Total, &s.Pending, &s.Diterima, &s.Ditolak, &s.TanpaKTA); err != nil {
		return statistics.PendaftarStats{}, fmt.Errorf("failed to get pendaftar statistics: %w", err)
	}
	return s, nil
}

// GetAbsensiStats implements statistics.StatisticsRepository.
// Rows without a status count as alpha.
func (r *statisticsRepository) GetAbsensiStats(ctx context.Context, since *time.Time) (statistics.AbsensiStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status_absensi = 'hadir' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status_absensi = 'izin' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status_absensi = 'sakit' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status_absensi IS NULL
				OR status_absensi NOT IN ('hadir', 'izin', 'sakit') THEN 1 ELSE 0 END), 0)
		FROM absensi
		WHERE ($1::timestamptz IS NULL OR tanggal >= $1::date)
	`
	var s statistics.AbsensiStats
	if err := q.QueryRow(ctx, query, since).Scan(&s.Total, &s.Hadir, &s.Izin, &s.Sakit, &s.Alpha); err != nil {
		return statistics.AbsensiStats{}, fmt.Errorf("failed to get absensi statistics: %w", err)
	}
	return s, nil
}

// GetGenderStats implements statistics.StatisticsRepository.
func (r *statisticsRepository) GetGenderStats(ctx context.Context, since *time.Time) (statistics.GenderStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN jenis_kelamin = 'L' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN jenis_kelamin = 'P' THEN 1 ELSE 0 END), 0)
		FROM pendaftar
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
	`
	var s statistics.GenderStats
	if err := q.QueryRow(ctx, query, since).Scan(&s.LakiLaki, &s.Perempuan); err != nil {
		return statistics.GenderStats{}, fmt.Errorf("failed to get gender statistics: %w", err)
	}
	return s, nil
}
