package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap 所有快捷键
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Toggle    key.Binding
	Play      key.Binding
	Pass      key.Binding
	Start     key.Binding
	PlayAgain key.Binding
	Dismiss   key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		MoveLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("shift+←", "move tile left")),
		MoveRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("shift+→", "move tile right")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select tile")),
		Play:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Pass:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pass")),
		Start:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start game")),
		PlayAgain: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "play again")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
		ScrollUp:  key.NewBinding(key.WithKeys("pgup", "k"), key.WithHelp("pgup", "log up")),
		ScrollDn:  key.NewBinding(key.WithKeys("pgdown", "j"), key.WithHelp("pgdn", "log down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Play, k.Pass, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle},
		{k.MoveLeft, k.MoveRight},
		{k.Play, k.Pass},
		{k.ScrollUp, k.ScrollDn},
		{k.Help, k.Quit},
	}
}
