package pendaftar

import (
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/validator"
)

// ========================================
// PENDAFTAR DTOs
// ========================================

type PendaftarResponse struct {
	ID           string  `json:"id"`
	NamaLengkap  string  `json:"nama_lengkap"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	NoHP         *string `json:"no_hp,omitempty"`
	JenisKelamin *string `json:"jenis_kelamin,omitempty"`
	TempatLahir  *string `json:"tempat_lahir,omitempty"`
	TanggalLahir *string `json:"tanggal_lahir,omitempty"`
	Alamat       *string `json:"alamat,omitempty"`
	TinggiBadan  *int    `json:"tinggi_badan,omitempty"`
	BeratBadan   *int    `json:"berat_badan,omitempty"`
	AsalSekolah  *string `json:"asal_sekolah,omitempty"`
	Kelas        *string `json:"kelas,omitempty"`
	Foto         *string `json:"foto,omitempty"`
	Status       Status  `json:"status"`
	NomorKTA     *string `json:"nomor_kta,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListPendaftarResponse struct {
	Data       []PendaftarResponse   `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// StatusAll disables the status filter.
const StatusAll = "all"

type PendaftarFilter struct {
	Status string // pending, diterima, ditolak or all
	Search string // nama_lengkap, username or email
	HasKTA *bool

	Page  int
	Limit int
}

func (f *PendaftarFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit > pagination.MaxLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	f.Page, f.Limit = pagination.Normalize(f.Page, f.Limit)

	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.Status != StatusAll && !Status(f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: all, pending, diterima, ditolak",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusFilter returns nil when every status is requested.
func (f PendaftarFilter) StatusFilter() *Status {
	if f.Status == "" || f.Status == StatusAll {
		return nil
	}
	s := Status(f.Status)
	return &s
}

type UpdateStatusRequest struct {
	ID       string  `json:"-"`
	Status   Status  `json:"status"`
	NomorKTA *string `json:"nomor_kta,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != StatusDiterima && r.Status != StatusDitolak {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: diterima, ditolak",
		})
	}

	if r.NomorKTA != nil {
		if r.Status != StatusDiterima {
			errs = append(errs, validator.ValidationError{
				Field:   "nomor_kta",
				Message: "nomor_kta can only be set when status is diterima",
			})
		} else if !validator.IsValidKTA(*r.NomorKTA) {
			errs = append(errs, validator.ValidationError{
				Field:   "nomor_kta",
				Message: "nomor_kta must look like RJW-2026-0001",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateKTARequest struct {
	PendaftarID string `json:"pendaftarId"`
}

func (r *GenerateKTARequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PendaftarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "pendaftarId",
			Message: "pendaftarId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateKTAResponse struct {
	PendaftarID string `json:"pendaftarId"`
	NomorKTA    string `json:"nomor_kta"`
}
