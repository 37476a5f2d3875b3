package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", validator.ValidationErrors{{Field: "newPassword", Message: "password minimal 6 karakter"}}, http.StatusBadRequest, "VALIDATION_ERROR", "password minimal 6 karakter"},
		{"wrapped not found", fmt.Errorf("lookup: %w", pendaftar.ErrPendaftarNotFound), http.StatusNotFound, "NOT_FOUND", "Pendaftar tidak ditemukan"},
		{"kta twice", pendaftar.ErrKTAAlreadyGenerated, http.StatusConflict, "CONFLICT", "Nomor KTA sudah dibuat untuk pendaftar ini"},
		{"reject with kta", pendaftar.ErrKTARequiresAccepted, http.StatusConflict, "CONFLICT", "Pendaftar yang sudah memiliki nomor KTA tidak dapat ditolak"},
		{"not admin", user.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN", "Akses khusus admin"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Terjadi kesalahan pada server"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}
