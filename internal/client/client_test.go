package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListPendaftar_SendsQueryAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/pendaftar", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "all", q.Get("status"))
		assert.Equal(t, "john", q.Get("search"))
		assert.Equal(t, "3", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "false", q.Get("has_kta"))

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "p-21", "nama_lengkap": "John 21", "status": "pending"},
			},
			"pagination": map[string]interface{}{"page": 3, "limit": 10, "totalItems": 25, "totalPages": 3},
		})
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/", WithToken("tok"))
	hasKTA := false
	page, err := c.ListPendaftar(context.Background(), PendaftarQuery{Search: "john", HasKTA: &hasKTA, Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, pendaftar.StatusPending, page.Items[0].Status)
	assert.Equal(t, int64(25), page.Pagination.TotalItems)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestErrorMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/generate-kta":
			writeJSON(w, http.StatusConflict, map[string]interface{}{"success": false, "message": "Nomor KTA sudah dibuat untuk pendaftar ini"})
		case "/admin/statistics":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<html>oops</html>")
		default:
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.GenerateKTA(context.Background(), "p-1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Nomor KTA sudah dibuat untuk pendaftar ini", MessageOf(err))

	_, err = c.Statistics(context.Background(), statistics.PeriodAll)
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, MessageOf(err))

	_, err = c.ResetPassword(context.Background(), "u-1", "rahasia")
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, MessageOf(err))
}

func TestMutationsReturnServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/admin/pendaftar/p-1/status":
			assert.Equal(t, map[string]string{"status": "diterima"}, body)
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Pendaftar berhasil diterima"})
		case r.Method == http.MethodPost && r.URL.Path == "/admin/generate-kta":
			assert.Equal(t, map[string]string{"pendaftarId": "p-1"}, body)
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"message": "Nomor KTA berhasil dibuat: RJW-2026-0001",
				"data":    map[string]string{"pendaftarId": "p-1", "nomor_kta": "RJW-2026-0001"},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/admin/users/u-1/reset-password":
			assert.Equal(t, map[string]string{"newPassword": "rahasia"}, body)
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Password berhasil direset"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	msg, err := c.UpdatePendaftarStatus(ctx, "p-1", pendaftar.StatusDiterima)
	require.NoError(t, err)
	assert.Equal(t, "Pendaftar berhasil diterima", msg)

	res, err := c.GenerateKTA(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "RJW-2026-0001", res.NomorKTA)
	assert.Equal(t, "Nomor KTA berhasil dibuat: RJW-2026-0001", res.Message)

	msg, err = c.ResetPassword(ctx, "u-1", "rahasia")
	require.NoError(t, err)
	assert.Equal(t, "Password berhasil direset", msg)
}

func TestListAbsensi_NullStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": "a-1", "kampus": "A", "status_absensi": nil, "tanggal": "2026-01-02"},
			},
			"pagination": map[string]interface{}{"page": 1, "limit": 10, "totalItems": 1, "totalPages": 1},
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).ListAbsensi(context.Background(), AbsensiQuery{StartDate: "2026-01-01"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.Items[0].Status)
	assert.IsType(t, []absensi.AbsensiResponse{}, page.Items)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).ListUsers(context.Background(), UserQuery{})
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, MessageOf(err))
}

func TestSession(t *testing.T) {
	var logoutCalled bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"token": "tok-123",
					"user":  map[string]interface{}{"id": "u-1", "username": "admin", "role": "admin"},
				},
			})
		case "/auth/logout":
			logoutCalled = true
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	s, err := Login(context.Background(), c, "admin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", c.Token())
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "admin", s.CurrentUser().Username)

	require.NoError(t, s.Logout(context.Background()))
	assert.True(t, logoutCalled)
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, c.Token())
}
