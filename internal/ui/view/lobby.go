package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/ui/common"
	"github.com/palemoky/lexio/internal/ui/model"
)

// StartView renders the start screen with the table size selector.
func StartView(m model.Model) string {
	width := m.Width()
	var sb strings.Builder

	title := common.TitleStyle("LEXIO")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var options []string
	for _, n := range client.AllowedPlayerCounts {
		label := fmt.Sprintf(" %d players ", n)
		options = append(options, common.Button(label, n == m.PlayerCount()))
	}
	selector := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(options, "  "))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.BoxStyle.Padding(1, 2).Render(selector)))
	sb.WriteString("\n\n")

	hint := common.HintStyle.Render("←/→ or 3-5 to choose, Enter to start, Esc to quit")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	return sb.String()
}

// WaitingView renders lobby population while the table fills.
func WaitingView(m model.Model) string {
	width := m.Width()
	w := m.Session().Waiting()

	var sb strings.Builder
	title := common.TitleStyle("Waiting for players")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	progress := fmt.Sprintf("%d / %d joined", w.Current, w.Needed)
	if w.Needed > 0 {
		filled := min(w.Current, w.Needed)
		progress += "\n\n" + strings.Repeat("■ ", filled) + strings.Repeat("□ ", w.Needed-filled)
	}
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, common.BoxStyle.Padding(1, 3).Render(progress)))
	return sb.String()
}
