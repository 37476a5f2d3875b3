package absensi

import (
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/validator"
)

type AbsensiResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Username    *string `json:"username,omitempty"`
	NamaLengkap *string `json:"nama_lengkap,omitempty"`
	Kampus      string  `json:"kampus"`
	Status      *Status `json:"status_absensi"`
	Tanggal     string  `json:"tanggal"` // YYYY-MM-DD
	Waktu       *string `json:"waktu,omitempty"`
	Foto        *string `json:"foto,omitempty"`
	Keterangan  *string `json:"keterangan,omitempty"`
}

type ListAbsensiResponse struct {
	Data       []AbsensiResponse     `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

type AbsensiFilter struct {
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	Search    string // username, nama_lengkap or kampus

	Page  int
	Limit int
}

func (f *AbsensiFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Limit < 0 || f.Limit > pagination.MaxLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}
	f.Page, f.Limit = pagination.Normalize(f.Page, f.Limit)

	start, startOK := validator.IsValidDate(f.StartDate)
	if f.StartDate != "" && !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if f.EndDate != "" && !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
