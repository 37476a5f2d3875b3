package response

import (
	"errors"
	"net/http"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/auth"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.First(), validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Username atau password salah")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Sesi telah berakhir, silakan login kembali")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Token tidak valid")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User tidak ditemukan")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Akses khusus admin")
	case errors.Is(err, user.ErrPasswordTooShort):
		BadRequest(w, "Password minimal 6 karakter", nil)

	// Pendaftar domain errors
	case errors.Is(err, pendaftar.ErrPendaftarNotFound):
		NotFound(w, "Pendaftar tidak ditemukan")
	case errors.Is(err, pendaftar.ErrInvalidStatus):
		BadRequest(w, "Status tidak valid", nil)
	case errors.Is(err, pendaftar.ErrPendaftarNotAccepted):
		BadRequest(w, "Pendaftar belum diterima", nil)
	case errors.Is(err, pendaftar.ErrKTARequiresAccepted):
		Conflict(w, "Pendaftar yang sudah memiliki nomor KTA tidak dapat ditolak")
	case errors.Is(err, pendaftar.ErrKTAAlreadyGenerated):
		Conflict(w, "Nomor KTA sudah dibuat untuk pendaftar ini")
	case errors.Is(err, pendaftar.ErrKTAExists):
		Conflict(w, "Nomor KTA sudah digunakan")

	// Absensi & statistics
	case errors.Is(err, absensi.ErrInvalidDateRange):
		BadRequest(w, "Tanggal mulai tidak boleh melewati tanggal akhir", nil)
	case errors.Is(err, statistics.ErrInvalidPeriod):
		BadRequest(w, "Periode tidak valid", nil)

	// Default
	default:
		InternalServerError(w, "Terjadi kesalahan pada server")
	}
}
