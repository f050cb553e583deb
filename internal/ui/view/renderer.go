// Package view provides UI rendering functions.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/ui/common"
	"github.com/palemoky/lexio/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected into OnlineModel.
func CreateViewRenderer() func(model.Model) string {
	return func(m model.Model) string {
		s := m.Session()

		// A pending notice is modal over every screen.
		if notice := s.CurrentNotice(); notice != nil {
			return NoticeView(m.Width(), m.Height(), *notice)
		}
		if m.ShowingHelp() {
			return HelpView(m)
		}

		var content string
		switch s.Screen() {
		case session.ScreenStart:
			content = StartView(m)
		case session.ScreenWaiting:
			content = WaitingView(m)
		case session.ScreenPlaying:
			content = GameView(m)
		case session.ScreenRoundResult:
			content = RoundResultView(m)
		case session.ScreenGameOver:
			content = GameOverView(m)
		default:
			content = "Unknown screen"
		}
		return withStatusLine(m, content)
	}
}

// withStatusLine appends the current system notification, if any.
func withStatusLine(m model.Model, content string) string {
	n := m.GetCurrentNotification()
	if n == nil {
		return content
	}
	style := common.HintStyle
	if n.Type == model.NotifyError {
		style = common.ErrorStyle
	}
	line := lipgloss.PlaceHorizontal(m.Width(), lipgloss.Center, style.Render(n.Message))
	return lipgloss.JoinVertical(lipgloss.Left, content, "", line)
}

// NoticeView renders a blocking notice centred on screen.
func NoticeView(width, height int, n session.Notice) string {
	title := "Notice"
	switch n.Kind {
	case session.NoticeServer:
		title = "Server"
	case session.NoticeDisconnect:
		title = "Disconnected"
	case session.NoticeTransport:
		title = "Connection"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		common.TitleStyle(title),
		"",
		n.Message,
		"",
		common.HintStyle.Render("Press Enter to continue"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		common.ModalStyle.Render(body),
		lipgloss.WithWhitespaceChars(" "),
	)
}

// HelpView renders the rules summary and full key help.
func HelpView(m model.Model) string {
	rules := common.BoxStyle.Padding(0, 1).Render(RenderGameRules())
	keys := m.Help().FullHelpView(m.Keys().FullHelp())
	content := lipgloss.JoinVertical(lipgloss.Center, rules, "", keys, "", common.HintStyle.Render("Press ? to close"))
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, content)
}

// RenderGameRules renders the short rules reference.
func RenderGameRules() string {
	var sb string

	sb += "[Goal]\n"
	sb += "Empty your hand first. Everyone else pays you for the tiles they hold.\n\n"

	sb += "[Combinations]\n"
	sb += "• Single, pair, triple\n"
	sb += "• Five tiles: straight, flush, full house, four of a kind, straight flush\n\n"

	sb += "[Turns]\n"
	sb += "1. The leader may play any combination and may not pass\n"
	sb += "2. Others must beat the board with the same number of tiles, or pass\n"
	sb += "3. Once you pass you sit out until the round resets\n"

	return sb
}
