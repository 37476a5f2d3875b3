package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/paskibra-rajawali/admin-dashboard/internal/dashboard"
)

// Theme is the color palette of the dashboard. Colors are ANSI 256 codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	ActiveTab        lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	SuccessToast lipgloss.Color
	ErrorToast   lipgloss.Color

	Badges map[dashboard.Color]lipgloss.Color
}

var DefaultTheme = Theme{
	NormalText:         lipgloss.Color("252"),
	FaintText:          lipgloss.Color("243"),
	SelectedBackground: lipgloss.Color("237"),
	SelectedForeground: lipgloss.Color("231"),
	HeaderForeground:   lipgloss.Color("255"),
	ActiveTab:          lipgloss.Color("203"),
	BorderColor:        lipgloss.Color("240"),
	HelpText:           lipgloss.Color("245"),
	SuccessToast:       lipgloss.Color("35"),
	ErrorToast:         lipgloss.Color("160"),
	Badges: map[dashboard.Color]lipgloss.Color{
		dashboard.ColorGreen:  lipgloss.Color("42"),
		dashboard.ColorYellow: lipgloss.Color("214"),
		dashboard.ColorRed:    lipgloss.Color("196"),
		dashboard.ColorBlue:   lipgloss.Color("39"),
		dashboard.ColorPurple: lipgloss.Color("141"),
		dashboard.ColorGray:   lipgloss.Color("245"),
	},
}

// Badge renders a status badge in its palette color.
func (theme Theme) Badge(b dashboard.Badge) string {
	color, ok := theme.Badges[b.Color]
	if !ok {
		color = theme.FaintText
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(b.String())
}
