package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/paskibra-rajawali/admin-dashboard/internal/dashboard"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/absensi"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/pendaftar"
	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/user"
)

var (
	pendaftarColumns = []column{
		{"Nama", 22}, {"Username", 14}, {"Asal Sekolah", 18}, {"Status", 16}, {"Nomor KTA", 15}, {"Daftar", 10},
	}
	ktaColumns = []column{
		{"Nama", 22}, {"Username", 14}, {"Email", 26}, {"Status", 16}, {"Daftar", 10},
	}
	userColumns = []column{
		{"Username", 16}, {"Email", 28}, {"Role", 14}, {"Dibuat", 10},
	}
	absensiColumns = []column{
		{"Nama", 22}, {"Kampus", 14}, {"Tanggal", 10}, {"Waktu", 8}, {"Status", 12}, {"Foto", 40},
	}
)

func pendaftarCells(theme Theme, p pendaftar.PendaftarResponse) []string {
	return []string{
		p.NamaLengkap,
		p.Username,
		dashboard.Optional(p.AsalSekolah),
		theme.Badge(dashboard.PendaftarBadge(p.Status)),
		dashboard.Optional(p.NomorKTA),
		shortDate(p.CreatedAt),
	}
}

func ktaCells(theme Theme, p pendaftar.PendaftarResponse) []string {
	return []string{
		p.NamaLengkap,
		p.Username,
		p.Email,
		theme.Badge(dashboard.PendaftarBadge(p.Status)),
		shortDate(p.CreatedAt),
	}
}

func userCells(theme Theme, u user.UserResponse) []string {
	return []string{u.Username, u.Email, theme.Badge(dashboard.RoleBadge(u.Role)), shortDate(u.CreatedAt)}
}

func absensiCells(theme Theme, a absensi.AbsensiResponse, photoURL string) []string {
	name := dashboard.Optional(a.NamaLengkap)
	if name == "-" {
		name = dashboard.Optional(a.Username)
	}
	return []string{
		name,
		a.Kampus,
		a.Tanggal,
		dashboard.Optional(a.Waktu),
		theme.Badge(dashboard.AttendanceBadge(a.Status)),
		photoURL,
	}
}

func shortDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	if s == "" {
		return "-"
	}
	return s
}

func (model Model) View() string {
	if model.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(model.renderHeader())
	b.WriteString("\n\n")

	switch {
	case model.focus == focusDetail:
		b.WriteString(model.renderDetailPane())
	case model.active == TabStatistics:
		b.WriteString(renderStatistics(model.theme, model.pages.Statistics.View()))
	default:
		var pending func(string) bool
		switch model.active {
		case TabPendaftar:
			pending = model.pages.Pendaftar.Pending
		case TabKTA:
			pending = model.pages.KTA.Pending
		case TabUsers:
			pending = model.pages.Users.Pending
		}
		b.WriteString(model.lists[model.active].Render(model.theme, model.cursors[model.active], pending))
	}

	if model.focus == focusPassword {
		b.WriteString("\n\n")
		b.WriteString(model.renderPasswordDialog())
	}
	if model.focus == focusSearch || model.focus == focusDates {
		b.WriteString("\n\n")
		b.WriteString(model.input.View())
	}

	b.WriteString("\n\n")
	if t := model.toasts.current(); t != nil {
		color := model.theme.SuccessToast
		if t.kind == toastError {
			color = model.theme.ErrorToast
		}
		b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(t.text))
	} else {
		b.WriteString(model.renderHelp())
	}
	return b.String()
}

func (model Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.ActiveTab).Render("Paskibra Rajawali · Admin")
	if model.session != nil {
		if u := model.session.CurrentUser(); u != nil {
			title += lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("  " + u.Username)
		}
	}

	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf(" %d %s ", int(t)+1, t)
		style := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		if t == model.active {
			style = lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(model.theme.ActiveTab)
		}
		tabs = append(tabs, style.Render(label))
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...) + model.renderFilterSummary()
}

func (model Model) renderFilterSummary() string {
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	var parts []string
	switch model.active {
	case TabPendaftar:
		f := model.pages.Pendaftar.Snapshot().Query.Filter
		parts = append(parts, "status: "+f.Status)
		if f.Search != "" {
			parts = append(parts, "cari: "+f.Search)
		}
	case TabKTA, TabUsers, TabAbsensi:
		if model.active == TabUsers {
			parts = append(parts, "role: "+model.pages.Users.Snapshot().Query.Filter.Role)
		}
		if model.active == TabAbsensi {
			f := model.pages.Absensi.Snapshot().Query.Filter
			if f.StartDate != "" || f.EndDate != "" {
				parts = append(parts, "tanggal: "+strings.TrimSpace(f.StartDate+" s/d "+f.EndDate))
			}
		}
		if term := model.lists[model.active].SearchTerm(); term != "" {
			parts = append(parts, "cari: "+term)
		}
	case TabStatistics:
		parts = append(parts, "periode: "+string(model.pages.Statistics.View().Period))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n" + faint.Render(strings.Join(parts, "  ·  "))
}

func (model Model) renderPasswordDialog() string {
	d := model.pages.Users.Dialog()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Reset password: " + d.Username))
	b.WriteString("\n")
	b.WriteString(model.password.View())
	if d.Err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.ErrorToast).Render(d.Err))
	}
	if model.pages.Users.Pending(d.UserID) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("Menyimpan..."))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Render(b.String())
}

func (model Model) renderDetailPane() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Render(model.detail.View())
}

func renderDetail(p pendaftar.PendaftarResponse, uploadURL string) string {
	rows := [][2]string{
		{"Nama lengkap", p.NamaLengkap},
		{"Username", p.Username},
		{"Email", p.Email},
		{"No. HP", dashboard.Optional(p.NoHP)},
		{"Jenis kelamin", dashboard.GenderLabel(p.JenisKelamin)},
		{"Tempat lahir", dashboard.Optional(p.TempatLahir)},
		{"Tanggal lahir", dashboard.Optional(p.TanggalLahir)},
		{"Alamat", dashboard.Optional(p.Alamat)},
		{"Tinggi badan", dashboard.OptionalInt(p.TinggiBadan, "cm")},
		{"Berat badan", dashboard.OptionalInt(p.BeratBadan, "kg")},
		{"Asal sekolah", dashboard.Optional(p.AsalSekolah)},
		{"Kelas", dashboard.Optional(p.Kelas)},
		{"Status", dashboard.PendaftarBadge(p.Status).String()},
		{"Nomor KTA", dashboard.Optional(p.NomorKTA)},
		{"Foto", dashboard.ImageURL(uploadURL, p.Foto)},
		{"Terdaftar", p.CreatedAt},
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-15s %s\n", row[0], row[1])
	}
	return b.String()
}

func renderStatistics(theme Theme, view dashboard.StatisticsView) string {
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	if view.Loading {
		return faint.Render("Memuat data...")
	}
	if view.Empty {
		return faint.Render(view.EmptyMessage)
	}

	bold := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	var b strings.Builder
	section := func(title string, total int64, shares []dashboard.Share) {
		b.WriteString(bold.Render(fmt.Sprintf("%s (%d)", title, total)))
		b.WriteString("\n")
		for _, s := range shares {
			bar := strings.Repeat("█", int(s.Percent/5))
			fmt.Fprintf(&b, "  %-10s %5d  %5.1f%%  %s\n", s.Label, s.Count, s.Percent, bar)
		}
		b.WriteString("\n")
	}
	section("Pendaftar", view.PendaftarTotal, view.Pendaftar)
	b.WriteString(faint.Render(fmt.Sprintf("  Diterima tanpa nomor KTA: %d", view.TanpaKTA)))
	b.WriteString("\n\n")
	section("Absensi", view.AbsensiTotal, view.Absensi)
	var genderTotal int64
	for _, s := range view.Gender {
		genderTotal += s.Count
	}
	section("Jenis kelamin", genderTotal, view.Gender)
	return strings.TrimRight(b.String(), "\n")
}

func (model Model) renderHelp() string {
	bindings := []key.Binding{model.keys.Up, model.keys.Down, model.keys.PrevPage, model.keys.NextPage, model.keys.Search}
	switch model.focus {
	case focusSearch, focusDates, focusPassword:
		bindings = []key.Binding{model.keys.Confirm, model.keys.Cancel}
	case focusDetail:
		bindings = []key.Binding{model.keys.Up, model.keys.Down, model.keys.Cancel}
	default:
		switch model.active {
		case TabPendaftar:
			bindings = append(bindings, model.keys.CycleFilter, model.keys.Detail, model.keys.Accept, model.keys.Reject, model.keys.GenerateKTA)
		case TabKTA:
			bindings = append(bindings, model.keys.Detail, model.keys.GenerateKTA)
		case TabUsers:
			bindings = append(bindings, model.keys.CycleFilter, model.keys.ResetPasswd)
		case TabAbsensi:
			bindings = append(bindings, model.keys.DateRange)
		case TabStatistics:
			bindings = []key.Binding{model.keys.CycleFilter}
		}
		bindings = append(bindings, model.keys.Refresh, model.keys.Logout, model.keys.Quit)
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(strings.Join(parts, " · "))
}
