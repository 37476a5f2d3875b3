package absensi

import (
	"context"
	"fmt"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

type AbsensiServiceImpl struct {
	absensi.AbsensiRepository
}

func NewAbsensiService(repo absensi.AbsensiRepository) absensi.AbsensiService {
	return &AbsensiServiceImpl{AbsensiRepository: repo}
}

// List implements absensi.AbsensiService.
func (s *AbsensiServiceImpl) List(ctx context.Context, filter absensi.AbsensiFilter) (absensi.ListAbsensiResponse, error) {
	if err := filter.Validate(); err != nil {
		return absensi.ListAbsensiResponse{}, err
	}

	records, total, err := s.AbsensiRepository.List(ctx, filter)
	if err != nil {
		return absensi.ListAbsensiResponse{}, fmt.Errorf("failed to list absensi: %w", err)
	}

	data := make([]absensi.AbsensiResponse, 0, len(records))
	for _, a := range records {
		data = append(data, absensi.AbsensiResponse{
			ID:          a.ID,
			UserID:      a.UserID,
			Username:    a.Username,
			NamaLengkap: a.NamaLengkap,
			Kampus:      a.Kampus,
			Status:      a.Status,
			Tanggal:     a.Tanggal.Format("2006-01-02"),
			Waktu:       a.Waktu,
			Foto:        a.Foto,
			Keterangan:  a.Keterangan,
		})
	}

	return absensi.ListAbsensiResponse{
		Data:       data,
		Pagination: pagination.New(filter.Page, filter.Limit, total),
	}, nil
}
