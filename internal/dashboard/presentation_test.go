package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

func TestRangeLabel(t *testing.T) {
	cases := []struct {
		name string
		p    pagination.Pagination
		want string
	}{
		{"first page", pagination.New(1, 10, 25), "1 - 10 dari 25 data"},
		{"partial last page", pagination.New(5, 5, 25), "21 - 25 dari 25 data"},
		{"short last page", pagination.New(3, 10, 25), "21 - 25 dari 25 data"},
		{"empty", pagination.New(1, 10, 0), "0 - 0 dari 0 data"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RangeLabel(tc.p))
		})
	}
}

func TestTotalPagesIsCeiling(t *testing.T) {
	assert.Equal(t, 3, pagination.New(1, 10, 25).TotalPages)
	assert.Equal(t, 5, pagination.New(1, 5, 25).TotalPages)
	assert.Equal(t, 1, pagination.New(1, 10, 1).TotalPages)
	assert.Equal(t, 0, pagination.New(1, 10, 0).TotalPages)
}

func TestPager(t *testing.T) {
	cases := []struct {
		pager      Pager
		prev, next bool
	}{
		{Pager{Page: 1, TotalPages: 3}, false, true},
		{Pager{Page: 2, TotalPages: 3}, true, true},
		{Pager{Page: 3, TotalPages: 3}, true, false},
		{Pager{Page: 1, TotalPages: 1}, false, false},
		{Pager{Page: 1, TotalPages: 0}, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.prev, tc.pager.CanPrev(), "prev %+v", tc.pager)
		assert.Equal(t, tc.next, tc.pager.CanNext(), "next %+v", tc.pager)
	}
	assert.Equal(t, "Halaman 2 dari 3", Pager{Page: 2, TotalPages: 3}.Label())
}

func TestAttendanceBadge(t *testing.T) {
	status := func(s string) *absensi.Status {
		v := absensi.Status(s)
		return &v
	}

	assert.Equal(t, "Hadir", AttendanceBadge(status("hadir")).Label)
	assert.Equal(t, "Izin", AttendanceBadge(status("izin")).Label)
	assert.Equal(t, "Sakit", AttendanceBadge(status("sakit")).Label)
	assert.Equal(t, "Alpha", AttendanceBadge(status("alpha")).Label)

	// Missing and unrecognised statuses fall back to alpha.
	assert.Equal(t, AttendanceBadge(status("alpha")), AttendanceBadge(nil))
	assert.Equal(t, AttendanceBadge(status("alpha")), AttendanceBadge(status("terlambat")))
}

func TestPendaftarBadge(t *testing.T) {
	assert.Equal(t, ColorGreen, PendaftarBadge(pendaftar.StatusDiterima).Color)
	assert.Equal(t, ColorRed, PendaftarBadge(pendaftar.StatusDitolak).Color)

	pending := PendaftarBadge(pendaftar.StatusPending)
	unknown := PendaftarBadge(pendaftar.Status("ditunda"))
	assert.Equal(t, "Tidak diketahui", unknown.Label)
	assert.Equal(t, pending.Color, unknown.Color)
	assert.Equal(t, pending.Icon, unknown.Icon)
}

func TestRoleBadge(t *testing.T) {
	assert.Equal(t, "Admin", RoleBadge(user.RoleAdmin).Label)
	assert.Equal(t, "Anggota", RoleBadge(user.RoleAnggota).Label)
	assert.Equal(t, ColorGray, RoleBadge(user.Role("tamu")).Color)
}

func TestImageURL(t *testing.T) {
	name := "absensi/2026/foto.jpg"
	empty := ""
	assert.Equal(t, "http://localhost:8080/uploads/absensi/2026/foto.jpg", ImageURL("http://localhost:8080/uploads/", &name))
	assert.Equal(t, "-", ImageURL("http://localhost:8080/uploads", &empty))
	assert.Equal(t, "-", ImageURL("http://localhost:8080/uploads", nil))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 66.7, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(5, 5))
	assert.Equal(t, 0.0, Percent(3, 0))
}

func TestDisplayHelpers(t *testing.T) {
	l, x := "l", "X"
	height := 170
	assert.Equal(t, "Laki-laki", GenderLabel(&l))
	assert.Equal(t, "X", GenderLabel(&x))
	assert.Equal(t, "-", GenderLabel(nil))
	assert.Equal(t, "170 cm", OptionalInt(&height, "cm"))
	assert.Equal(t, "-", Optional(nil))
}
