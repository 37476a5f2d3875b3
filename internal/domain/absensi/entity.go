package absensi

import "time"

// Status is the attendance outcome recorded for one day.
type Status string

const (
	StatusHadir Status = "hadir" // present
	StatusIzin  Status = "izin"  // excused
	StatusSakit Status = "sakit" // sick
	StatusAlpha Status = "alpha" // absent without notice
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusAlpha:
		return true
	}
	return false
}

type Absensi struct {
	ID         string
	UserID     string
	Kampus     string
	Status     *Status
	Tanggal    time.Time
	Waktu      *string // HH:MM:SS
	Foto       *string
	Keterangan *string
	CreatedAt  time.Time

	// Join
	Username    *string
	NamaLengkap *string
}
