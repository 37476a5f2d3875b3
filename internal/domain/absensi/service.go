package absensi

import "context"

type AbsensiService interface {
	List(ctx context.Context, filter AbsensiFilter) (ListAbsensiResponse, error)
}
