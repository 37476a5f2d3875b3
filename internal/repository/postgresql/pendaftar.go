package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/database"
)

const pendaftarColumns = `
	id, nama_lengkap, username, email, no_hp, jenis_kelamin,
	tempat_lahir, tanggal_lahir, alamat, tinggi_badan, berat_badan,
	asal_sekolah, kelas, foto, status, nomor_kta, created_at, updated_at`

type pendaftarRepository struct {
	db *database.DB
}

func NewPendaftarRepository(db *database.DB) pendaftar.PendaftarRepository {
	return &pendaftarRepository{db: db}
}

func scanPendaftar(row pgx.Row) (pendaftar.Pendaftar, error) {
	var p pendaftar.Pendaftar
	err := row.Scan(
		&p.ID, &p.NamaLengkap, &p.Username, &p.Email, &p.NoHP, &p.JenisKelamin,
		&p.TempatLahir, &p.TanggalLahir, &p.Alamat, &p.TinggiBadan, &p.BeratBadan,
		&p.AsalSekolah, &p.Kelas, &p.Foto, &p.Status, &p.NomorKTA, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// List implements pendaftar.PendaftarRepository.
func (r *pendaftarRepository) List(ctx context.Context, filter pendaftar.PendaftarFilter) ([]pendaftar.Pendaftar, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if status := filter.StatusFilter(); status != nil {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*status))
		argIdx++
	}

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(` AND (nama_lengkap ILIKE $%[1]d ESCAPE '\' OR username ILIKE $%[1]d ESCAPE '\' OR email ILIKE $%[1]d ESCAPE '\')`, argIdx)
		args = append(args, containsPattern(filter.Search))
		argIdx++
	}

	if filter.HasKTA != nil {
		if *filter.HasKTA {
			baseWhere += " AND nomor_kta IS NOT NULL"
		} else {
			baseWhere += " AND nomor_kta IS NULL"
		}
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM pendaftar WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count pendaftar: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM pendaftar
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, pendaftarColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query pendaftar: %w", err)
	}
	defer rows.Close()

	result := make([]pendaftar.Pendaftar, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPendaftar(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan pendaftar: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate pendaftar: %w", err)
	}

	return result, total, nil
}

// GetByID implements pendaftar.PendaftarRepository.
func (r *pendaftarRepository) GetByID(ctx context.Context, id string) (pendaftar.Pendaftar, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + pendaftarColumns + " FROM pendaftar WHERE id = $1"
	p, err := scanPendaftar(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pendaftar.Pendaftar{}, pendaftar.ErrPendaftarNotFound
		}
		return pendaftar.Pendaftar{}, fmt.Errorf("failed to get pendaftar: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate implements pendaftar.PendaftarRepository.
func (r *pendaftarRepository) GetByIDForUpdate(ctx context.Context, id string) (pendaftar.Pendaftar, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + pendaftarColumns + " FROM pendaftar WHERE id = $1 FOR UPDATE"
	p, err := scanPendaftar(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pendaftar.Pendaftar{}, pendaftar.ErrPendaftarNotFound
		}
		return pendaftar.Pendaftar{}, fmt.Errorf("failed to lock pendaftar: %w", err)
	}
	return p, nil
}

// UpdateStatus implements pendaftar.PendaftarRepository.
func (r *pendaftarRepository) UpdateStatus(ctx context.Context, id string, status pendaftar.Status, nomorKTA *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pendaftar
		SET status = $1,
			nomor_kta = COALESCE(nomor_kta, $2::text),
			kta_generated_at = CASE
				WHEN nomor_kta IS NULL AND $2::text IS NOT NULL THEN NOW()
				ELSE kta_generated_at
			END,
			updated_at = NOW()
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, query, string(status), nomorKTA, id)
	if err != nil {
		if isUniqueViolation(err) {
			return pendaftar.ErrKTAExists
		}
		if isCheckViolation(err, "pendaftar_kta_requires_diterima") {
			return pendaftar.ErrKTARequiresAccepted
		}
		return fmt.Errorf("failed to update pendaftar status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pendaftar.ErrPendaftarNotFound
	}
	return nil
}

// SetNomorKTA implements pendaftar.PendaftarRepository.
func (r *pendaftarRepository) SetNomorKTA(ctx context.Context, id string, nomorKTA string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pendaftar
		SET nomor_kta = $1, kta_generated_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND nomor_kta IS NULL AND status = 'diterima'
	`
	tag, err := q.Exec(ctx, query, nomorKTA, id)
	if err != nil {
		if isUniqueViolation(err) {
			return pendaftar.ErrKTAExists
		}
		return fmt.Errorf("failed to set nomor KTA: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pendaftar.ErrKTAAlreadyGenerated
	}
	return nil
}

// NextKTASequence implements pendaftar.PendaftarRepository.
// Runs inside the generating transaction; the advisory lock serializes allocation per year.
func (r *pendaftarRepository) NextKTASequence(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", int64(year)); err != nil {
		return 0, fmt.Errorf("failed to lock KTA sequence: %w", err)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT COUNT(*)
		FROM pendaftar
		WHERE nomor_kta IS NOT NULL
		  AND kta_generated_at >= $1 AND kta_generated_at < $2
	`
	var count int
	if err := q.QueryRow(ctx, query, start, start.AddDate(1, 0, 0)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count KTA for %d: %w", year, err)
	}
	return count + 1, nil
}

// ExistsByNomorKTA implements pendaftar.PendaftarRepository.
func (r *pendaftarRepository) ExistsByNomorKTA(ctx context.Context, nomorKTA string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM pendaftar WHERE nomor_kta = $1)", nomorKTA).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check nomor KTA: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isCheckViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514" && pgErr.ConstraintName == constraint
}
