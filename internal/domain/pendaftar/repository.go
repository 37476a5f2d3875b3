package pendaftar

import (
	"context"
)

type PendaftarRepository interface {
	// List returns one page of pendaftar matching filter plus the total match count.
	List(ctx context.Context, filter PendaftarFilter) ([]Pendaftar, int64, error)

	GetByID(ctx context.Context, id string) (Pendaftar, error)

	// GetByIDForUpdate locks the row; must run inside WithTransaction.
	GetByIDForUpdate(ctx context.Context, id string) (Pendaftar, error)

	UpdateStatus(ctx context.Context, id string, status Status, nomorKTA *string) error

	// SetNomorKTA only succeeds while nomor_kta is still NULL.
	SetNomorKTA(ctx context.Context, id string, nomorKTA string) error

	// NextKTASequence returns the next running number for the given year.
	NextKTASequence(ctx context.Context, year int) (int, error)

	ExistsByNomorKTA(ctx context.Context, nomorKTA string) (bool, error)
}
