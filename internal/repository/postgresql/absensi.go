package postgresql

import (
	"context"
	"fmt"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/database"
)

type absensiRepository struct {
	db *database.DB
}

func NewAbsensiRepository(db *database.DB) absensi.AbsensiRepository {
	return &absensiRepository{db: db}
}

// List implements absensi.AbsensiRepository.
func (r *absensiRepository) List(ctx context.Context, filter absensi.AbsensiFilter) ([]absensi.Absensi, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.tanggal >= $%d::date", argIdx)
		args = append(args, filter.StartDate)
		argIdx++
	}

	if filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.tanggal <= $%d::date", argIdx)
		args = append(args, filter.EndDate)
		argIdx++
	}

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(` AND (u.username ILIKE $%[1]d ESCAPE '\' OR p.nama_lengkap ILIKE $%[1]d ESCAPE '\' OR a.kampus ILIKE $%[1]d ESCAPE '\')`, argIdx)
		args = append(args, containsPattern(filter.Search))
		argIdx++
	}

	from := `
		FROM absensi a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN LATERAL (
			SELECT nama_lengkap
			FROM pendaftar
			WHERE user_id = a.user_id
			ORDER BY created_at DESC
			LIMIT 1
		) p ON TRUE
	`

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+from+" WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count absensi: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.user_id, a.kampus, a.status_absensi, a.tanggal,
			TO_CHAR(a.waktu, 'HH24:MI:SS'), a.foto, a.keterangan, a.created_at,
			u.username, p.nama_lengkap
		%s
		WHERE %s
		ORDER BY a.tanggal DESC, a.waktu DESC NULLS LAST, a.id DESC
		LIMIT $%d OFFSET $%d
	`, from, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query absensi: %w", err)
	}
	defer rows.Close()

	records := make([]absensi.Absensi, 0, filter.Limit)
	for rows.Next() {
		var a absensi.Absensi
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Kampus, &a.Status, &a.Tanggal,
			&a.Waktu, &a.Foto, &a.Keterangan, &a.CreatedAt,
			&a.Username, &a.NamaLengkap,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan absensi: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate absensi: %w", err)
	}

	return records, total, nil
}
