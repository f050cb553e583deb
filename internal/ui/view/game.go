package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/ui/common"
	"github.com/palemoky/lexio/internal/ui/model"
)

// GameView renders the table: banner, board, status, hand, actions and log.
func GameView(m model.Model) string {
	width := m.Width()
	view, ok := m.Session().View()
	if !ok {
		return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, "Waiting for the deal...")
	}

	sections := []string{
		RenderBanner(view.Banner),
		RenderBoard(view),
		RenderStatusTable(view.Status),
		RenderHand(view.Hand, m.Cursor()),
		RenderActions(view),
		common.BoxStyle.Render(m.LogView().View()),
		m.Help().View(m.Keys()),
	}

	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
	}
	return sb.String()
}

// RenderBanner renders the turn indicator.
func RenderBanner(b client.Banner) string {
	if b.MyTurn {
		return common.MyTurnStyle.Render(b.Text)
	}
	return common.OtherTurnStyle.Render(b.Text)
}

// RenderBoard renders the last played combination.
func RenderBoard(v client.ViewState) string {
	if len(v.Board) == 0 {
		return common.BoxStyle.Width(40).Align(lipgloss.Center).Render("(empty board)")
	}
	label := "Board"
	if v.BoardCombo != "" {
		label = fmt.Sprintf("Board: %s", v.BoardCombo)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, label, common.RenderTiles(v.Board))
	return common.BoxStyle.Width(40).Align(lipgloss.Center).Render(content)
}

// RenderStatusTable renders one row per seat.
func RenderStatusTable(rows []client.StatusRow) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		name := r.Name
		if r.Acting {
			name = common.ActingMarker + " " + name
		}
		data = append(data, []string{name, strconv.Itoa(r.Cards), common.FormatMoney(r.Money), string(r.Status)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Player", "Tiles", "Money", "Status").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return common.HeaderStyle
			}
			style := common.CellStyle
			if row >= 0 && row < len(rows) {
				if rows[row].Acting {
					style = style.Inherit(common.ActingRowStyle)
				}
				if rows[row].Self {
					style = style.Inherit(common.SelfRowStyle)
				}
			}
			return style
		})
	return t.Render()
}

// RenderHand renders the local hand with the cursor and selection marks.
func RenderHand(hand []client.HandTile, cursor int) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render("(no tiles)")
	}

	var faces, marks []string
	for _, h := range hand {
		style := common.SuitStyle(h.Tile.Suit)
		if h.Selected {
			style = style.Inherit(common.SelectedStyle)
		}
		face := style.Render(common.TileFace(h.Tile))
		faces = append(faces, face)

		mark := " "
		switch {
		case h.Position == cursor && h.Selected:
			mark = common.CursorMarker + common.SelectedMarker
		case h.Position == cursor:
			mark = common.CursorMarker
		case h.Selected:
			mark = common.SelectedMarker
		}
		marks = append(marks, lipgloss.PlaceHorizontal(lipgloss.Width(face), lipgloss.Center, mark))
	}

	title := fmt.Sprintf("Your hand (%d)", len(hand))
	content := lipgloss.JoinVertical(lipgloss.Center, title, strings.Join(faces, " "), strings.Join(marks, " "))
	return common.BoxStyle.Render(content)
}

// RenderActions renders the Play and Pass affordances.
func RenderActions(v client.ViewState) string {
	play := common.Button(fmt.Sprintf("Play (%d)", v.SelectedCount()), v.CanPlay)
	pass := common.Button("Pass", v.CanPass)
	return lipgloss.JoinHorizontal(lipgloss.Center, play, "  ", pass)
}

// RoundResultView renders the settlement of the finished round.
func RoundResultView(m model.Model) string {
	width := m.Width()
	r := m.Session().RoundResult()
	if r == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(common.TitleStyle(fmt.Sprintf("Round over! Player %d wins", r.Winner)))
	sb.WriteString("\n\n")
	for _, p := range r.Payments {
		sb.WriteString("  " + p + "\n")
	}
	if len(r.MoneyStatus) > 0 {
		sb.WriteString("\n")
		for i, money := range r.MoneyStatus {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", client.PlayerName(i, m.Session().MyPlayerNum()), common.FormatMoney(money)))
		}
	}
	sb.WriteString("\n" + common.HintStyle.Render("Next round starts shortly..."))

	box := common.BoxStyle.Padding(1, 3).Render(sb.String())
	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, box)
}

// GameOverView renders the final standings.
func GameOverView(m model.Model) string {
	width := m.Width()
	over := m.Session().GameOver()

	var sb strings.Builder
	sb.WriteString(common.TitleStyle("Game over!"))
	sb.WriteString("\n\n")
	if over != nil {
		// Each entry already carries its place.
		for _, entry := range over.Rankings {
			sb.WriteString("  " + entry + "\n")
		}
		if len(over.Bankrupt) > 0 {
			sb.WriteString("\nBankrupt: " + strings.Join(over.Bankrupt, ", ") + "\n")
		}
	}
	sb.WriteString("\n" + common.HintStyle.Render("Press Enter to play again, Esc to quit"))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(sb.String())
}
