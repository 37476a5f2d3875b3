package absensi

import "context"

// AbsensiRepository is read-only; attendance is recorded by the member app.
type AbsensiRepository interface {
	List(ctx context.Context, filter AbsensiFilter) ([]Absensi, int64, error)
}
