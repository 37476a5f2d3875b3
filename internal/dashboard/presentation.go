package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/pagination"
)

// Color names a badge palette entry; the TUI maps it to a terminal color.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
)

type Badge struct {
	Label string
	Icon  string
	Color Color
}

func (b Badge) String() string {
	return b.Icon + " " + b.Label
}

// PendaftarBadge renders unknown statuses with the pending style.
func PendaftarBadge(s pendaftar.Status) Badge {
	switch s {
	case pendaftar.StatusPending:
		return Badge{Label: "Menunggu", Icon: "⏳", Color: ColorYellow}
	case pendaftar.StatusDiterima:
		return Badge{Label: "Diterima", Icon: "✓", Color: ColorGreen}
	case pendaftar.StatusDitolak:
		return Badge{Label: "Ditolak", Icon: "✗", Color: ColorRed}
	default:
		return Badge{Label: "Tidak diketahui", Icon: "⏳", Color: ColorYellow}
	}
}

// AttendanceBadge renders a missing or unknown status as alpha.
func AttendanceBadge(s *absensi.Status) Badge {
	if s == nil {
		return alphaBadge
	}
	switch *s {
	case absensi.StatusHadir:
		return Badge{Label: "Hadir", Icon: "✓", Color: ColorGreen}
	case absensi.StatusIzin:
		return Badge{Label: "Izin", Icon: "✉", Color: ColorBlue}
	case absensi.StatusSakit:
		return Badge{Label: "Sakit", Icon: "✚", Color: ColorYellow}
	default:
		return alphaBadge
	}
}

var alphaBadge = Badge{Label: "Alpha", Icon: "✗", Color: ColorRed}

func RoleBadge(r user.Role) Badge {
	switch r {
	case user.RoleAdmin:
		return Badge{Label: "Admin", Icon: "★", Color: ColorPurple}
	case user.RoleAnggota:
		return Badge{Label: "Anggota", Icon: "•", Color: ColorBlue}
	default:
		return Badge{Label: "Tidak diketahui", Icon: "?", Color: ColorGray}
	}
}

// ImageURL joins a stored relative path onto the media base, or "-" when there is none.
func ImageURL(base string, filename *string) string {
	if filename == nil || strings.TrimSpace(*filename) == "" {
		return "-"
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(*filename, "/")
}

// RangeLabel describes the visible slice, e.g. "21 - 25 dari 25 data".
func RangeLabel(p pagination.Pagination) string {
	if p.TotalItems <= 0 || p.Limit <= 0 {
		return "0 - 0 dari 0 data"
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	start := int64(page-1)*int64(p.Limit) + 1
	end := int64(page) * int64(p.Limit)
	if end > p.TotalItems {
		end = p.TotalItems
	}
	if start > end {
		start = end
	}
	return fmt.Sprintf("%d - %d dari %d data", start, end, p.TotalItems)
}

// Pager derives the enabled state of the page controls.
type Pager struct {
	Page       int
	TotalPages int
}

func (p Pager) CanPrev() bool {
	return p.Page > 1
}

func (p Pager) CanNext() bool {
	return p.TotalPages > 0 && p.Page < p.TotalPages
}

func (p Pager) Label() string {
	return fmt.Sprintf("Halaman %d dari %d", p.Page, p.TotalPages)
}

// Percent returns part/total as a percentage rounded to one decimal.
func Percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}

// Optional renders a nullable field for display.
func Optional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func OptionalInt(n *int, unit string) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d %s", *n, unit)
}

// GenderLabel expands the L/P code stored for applicants.
func GenderLabel(code *string) string {
	if code == nil {
		return "-"
	}
	switch strings.ToUpper(*code) {
	case "L":
		return "Laki-laki"
	case "P":
		return "Perempuan"
	default:
		return *code
	}
}
