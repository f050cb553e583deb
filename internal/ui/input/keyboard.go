// Package input handles keyboard input processing.
package input

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/ui/model"
)

// HandleKeyPress handles keyboard input and returns whether it was handled.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.Keys()
	s := m.Session()

	if msg.Type == tea.KeyCtrlC {
		return true, tea.Quit
	}

	// A modal notice swallows every key until it is dismissed.
	if s.CurrentNotice() != nil {
		if key.Matches(msg, keys.Dismiss) {
			s.DismissNotice()
		}
		return true, nil
	}

	if key.Matches(msg, keys.Help) {
		m.SetShowingHelp(!m.ShowingHelp())
		return true, nil
	}

	switch s.Screen() {
	case session.ScreenStart:
		return handleStartKey(m, msg)
	case session.ScreenPlaying:
		return handlePlayingKey(m, msg)
	case session.ScreenGameOver:
		if key.Matches(msg, keys.PlayAgain) {
			return true, m.Apply(s.PlayAgain())
		}
	}

	if key.Matches(msg, keys.Quit) {
		return true, tea.Quit
	}
	return false, nil
}

func handleStartKey(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.Keys()
	counts := client.AllowedPlayerCounts

	switch {
	case key.Matches(msg, keys.Left):
		m.SetPlayerCount(stepCount(counts, m.PlayerCount(), -1))
		return true, nil
	case key.Matches(msg, keys.Right):
		m.SetPlayerCount(stepCount(counts, m.PlayerCount(), 1))
		return true, nil
	case key.Matches(msg, keys.Start):
		return true, m.Apply(m.Session().StartGame(m.PlayerCount()))
	case key.Matches(msg, keys.Quit):
		return true, tea.Quit
	}

	// Digits pick a table size directly.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		n := int(msg.Runes[0] - '0')
		if slices.Contains(counts, n) {
			m.SetPlayerCount(n)
			return true, nil
		}
	}
	return false, nil
}

func handlePlayingKey(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.Keys()
	s := m.Session()
	view, ok := s.View()
	if !ok {
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.Left):
		if m.Cursor() > 0 {
			m.SetCursor(m.Cursor() - 1)
		}
		return true, nil
	case key.Matches(msg, keys.Right):
		if m.Cursor() < len(view.Hand)-1 {
			m.SetCursor(m.Cursor() + 1)
		}
		return true, nil
	case key.Matches(msg, keys.MoveLeft):
		return true, moveTile(m, -1)
	case key.Matches(msg, keys.MoveRight):
		return true, moveTile(m, 1)
	case key.Matches(msg, keys.Toggle):
		return true, m.Apply(s.ToggleTile(m.Cursor()))
	case key.Matches(msg, keys.Play):
		return true, m.Apply(s.SubmitPlay())
	case key.Matches(msg, keys.Pass):
		return true, m.Apply(s.SubmitPass())
	case key.Matches(msg, keys.ScrollUp):
		m.LogView().ScrollUp(1)
		return true, nil
	case key.Matches(msg, keys.ScrollDn):
		m.LogView().ScrollDown(1)
		return true, nil
	}
	return false, nil
}

// moveTile reorders the hand locally and keeps the cursor on the moved tile.
func moveTile(m model.Model, delta int) tea.Cmd {
	out, pos := m.Session().MoveTile(m.Cursor(), delta)
	m.SetCursor(pos)
	return m.Apply(out)
}

// stepCount moves through the allowed table sizes without wrapping.
func stepCount(counts []int, current, delta int) int {
	i := slices.Index(counts, current)
	if i < 0 {
		return counts[0]
	}
	i = min(max(i+delta, 0), len(counts)-1)
	return counts[i]
}
