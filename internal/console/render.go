package console

import (
	"fmt"
	"strings"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/session"
)

// Render prints the current screen of c as plain text.
func Render(c *session.Controller) string {
	if n := c.CurrentNotice(); n != nil {
		return fmt.Sprintf("!! %s (type ok)", n.Message)
	}

	switch c.Screen() {
	case session.ScreenStart:
		counts := make([]string, 0, len(client.AllowedPlayerCounts))
		for _, n := range client.AllowedPlayerCounts {
			counts = append(counts, fmt.Sprint(n))
		}
		return fmt.Sprintf("LEXIO. Type start N to open a table (N = %s).", strings.Join(counts, ", "))
	case session.ScreenWaiting:
		w := c.Waiting()
		return fmt.Sprintf("Waiting for players: %d / %d joined", w.Current, w.Needed)
	case session.ScreenPlaying:
		view, ok := c.View()
		if !ok {
			return "Waiting for the deal..."
		}
		return renderTable(view)
	case session.ScreenRoundResult:
		return renderRound(c)
	case session.ScreenGameOver:
		return renderOver(c)
	}
	return ""
}

func renderTable(v client.ViewState) string {
	var sb strings.Builder
	sb.WriteString(v.Banner.Text + "\n")

	if len(v.Board) == 0 {
		sb.WriteString("Board: (empty)\n")
	} else {
		board := make([]string, 0, len(v.Board))
		for _, t := range v.Board {
			board = append(board, t.Label())
		}
		sb.WriteString("Board: " + strings.Join(board, " "))
		if v.BoardCombo != "" {
			sb.WriteString(" [" + v.BoardCombo + "]")
		}
		sb.WriteString("\n")
	}

	for _, r := range v.Status {
		mark := " "
		if r.Acting {
			mark = ">"
		}
		fmt.Fprintf(&sb, "%s %-8s %2d tiles %5d  %s\n", mark, r.Name, r.Cards, r.Money, r.Status)
	}

	hand := make([]string, 0, len(v.Hand))
	for _, h := range v.Hand {
		label := fmt.Sprintf("%d:%s", h.Position+1, h.Tile.Label())
		if h.Selected {
			label = "*" + label
		}
		hand = append(hand, label)
	}
	sb.WriteString("Hand: " + strings.Join(hand, " ") + "\n")

	var actions []string
	if v.CanPlay {
		actions = append(actions, "play")
	}
	if v.CanPass {
		actions = append(actions, "pass")
	}
	if len(actions) > 0 {
		sb.WriteString("You may: " + strings.Join(actions, ", ") + "\n")
	}

	if n := len(v.Log); n > 0 {
		sb.WriteString("Last: " + v.Log[n-1])
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderRound(c *session.Controller) string {
	r := c.RoundResult()
	if r == nil {
		return ""
	}
	lines := []string{fmt.Sprintf("Round over! Player %d wins", r.Winner)}
	lines = append(lines, r.Payments...)
	for i, money := range r.MoneyStatus {
		lines = append(lines, fmt.Sprintf("%s: %d", client.PlayerName(i, c.MyPlayerNum()), money))
	}
	return strings.Join(lines, "\n")
}

func renderOver(c *session.Controller) string {
	lines := []string{"Game over!"}
	if over := c.GameOver(); over != nil {
		lines = append(lines, over.Rankings...)
		if len(over.Bankrupt) > 0 {
			lines = append(lines, "Bankrupt: "+strings.Join(over.Bankrupt, ", "))
		}
	}
	lines = append(lines, "Type again to play again.")
	return strings.Join(lines, "\n")
}
