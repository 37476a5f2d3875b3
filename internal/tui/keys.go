package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	NextPage key.Binding
	PrevPage key.Binding

	TabPendaftar  key.Binding
	TabKTA        key.Binding
	TabUsers      key.Binding
	TabAbsensi    key.Binding
	TabStatistics key.Binding
	NextTab       key.Binding

	Search      key.Binding
	CycleFilter key.Binding // status, role or period depending on the tab
	DateRange   key.Binding
	Refresh     key.Binding
	Detail      key.Binding
	Accept      key.Binding
	Reject      key.Binding
	GenerateKTA key.Binding
	ResetPasswd key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Logout      key.Binding
	Quit        key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "naik"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "turun"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("→", "halaman berikut"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("←", "halaman sebelum"),
	),
	TabPendaftar: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "pendaftar"),
	),
	TabKTA: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "kta"),
	),
	TabUsers: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "users"),
	),
	TabAbsensi: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "absensi"),
	),
	TabStatistics: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "statistik"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "tab berikut"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "cari"),
	),
	CycleFilter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	DateRange: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "rentang tanggal"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "muat ulang"),
	),
	Detail: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "detail"),
	),
	Accept: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "terima"),
	),
	Reject: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "tolak"),
	),
	GenerateKTA: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "buat KTA"),
	),
	ResetPasswd: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "reset password"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "simpan"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "batal"),
	),
	Logout: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "keluar akun"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "keluar"),
	),
}
