// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/lexio/internal/tile"
)

// Markers
const (
	CursorMarker   = "▲"
	SelectedMarker = "●"
	ActingMarker   = "▶"
)

// Lipgloss Styles
var (
	DocStyle       = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle    = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	HintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	MyTurnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	OtherTurnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ModalStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 3)

	ButtonStyle         = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231")).Bold(true)
	DisabledButtonStyle = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("237")).Foreground(lipgloss.Color("243"))

	TileStyle     = lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1)
	SelectedStyle = lipgloss.NewStyle().Underline(true).Reverse(true)

	SelfRowStyle   = lipgloss.NewStyle().Bold(true)
	ActingRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	HeaderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Padding(0, 1)
	CellStyle      = lipgloss.NewStyle().Padding(0, 1)
)

// suitColors 每种花色的前景色
var suitColors = map[tile.Suit]lipgloss.Color{
	tile.Cloud: lipgloss.Color("#1E6FD9"),
	tile.Star:  lipgloss.Color("#1B8A2E"),
	tile.Moon:  lipgloss.Color("#CD0000"),
	tile.Sun:   lipgloss.Color("#D98E04"),
}

// SuitStyle returns the tile face style of s.
func SuitStyle(s tile.Suit) lipgloss.Style {
	if c, ok := suitColors[s]; ok {
		return TileStyle.Foreground(c)
	}
	return TileStyle.Foreground(lipgloss.Color("0"))
}

// Button renders a labelled affordance, greyed out when disabled.
func Button(label string, enabled bool) string {
	if enabled {
		return ButtonStyle.Render(label)
	}
	return DisabledButtonStyle.Render(label)
}
