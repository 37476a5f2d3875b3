package pendaftar

import "time"

// Status is the application state of a pendaftar.
type Status string

const (
	StatusPending  Status = "pending"
	StatusDiterima Status = "diterima" // accepted
	StatusDitolak  Status = "ditolak"  // rejected
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDiterima, StatusDitolak:
		return true
	}
	return false
}

type Gender string

const (
	GenderLakiLaki  Gender = "L"
	GenderPerempuan Gender = "P"
)

type Pendaftar struct {
	ID           string
	NamaLengkap  string
	Username     string
	Email        string
	NoHP         *string
	JenisKelamin *Gender
	TempatLahir  *string
	TanggalLahir *time.Time
	Alamat       *string
	TinggiBadan  *int
	BeratBadan   *int
	AsalSekolah  *string
	Kelas        *string
	Foto         *string
	Status       Status
	NomorKTA     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasKTA reports whether a membership card number was already generated.
func (p *Pendaftar) HasKTA() bool {
	return p.NomorKTA != nil && *p.NomorKTA != ""
}

// CanReceiveKTA holds only for accepted applicants without a card number.
func (p *Pendaftar) CanReceiveKTA() bool {
	return p.Status == StatusDiterima && !p.HasKTA()
}
