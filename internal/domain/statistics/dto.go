package statistics

// ========== STATISTICS ==========

// StatisticsResponse carries raw counts; the dashboard derives percentages.
type StatisticsResponse struct {
	Period    Period         `json:"period"`
	Pendaftar PendaftarStats `json:"pendaftar"`
	Absensi   AbsensiStats   `json:"absensi"`
	Gender    GenderStats    `json:"gender"`
}

type PendaftarStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Diterima int64 `json:"diterima"`
	Ditolak  int64 `json:"ditolak"`
	// Accepted applicants still waiting for a card number
	TanpaKTA int64 `json:"tanpa_kta"`
}

type AbsensiStats struct {
	Total int64 `json:"total"`
	Hadir int64 `json:"hadir"`
	Izin  int64 `json:"izin"`
	Sakit int64 `json:"sakit"`
	Alpha int64 `json:"alpha"`
}

type GenderStats struct {
	LakiLaki  int64 `json:"laki_laki"`
	Perempuan int64 `json:"perempuan"`
}
