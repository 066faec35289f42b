package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	TimeTrial key.Binding
	Endless   key.Binding
	Restart   key.Binding
	Menu      key.Binding
	Sessions  key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		TimeTrial: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "time trial"),
		),
		Endless: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "endless"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "menu"),
		),
		Sessions: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "session log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the enabled bindings for the help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.TimeTrial, k.Endless, k.Restart, k.Menu, k.Sessions, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.TimeTrial, k.Endless, k.Restart, k.Menu},
		{k.Sessions, k.Quit},
	}
}

// ForPhase enables only the bindings that do something in the given phase,
// so the help bar stays short.
func (k KeyMap) ForPhase(phase string) KeyMap {
	menu := phase == "Menu"
	playing := phase == "Gameplay"
	over := phase == "GameOver"

	for _, b := range []*key.Binding{&k.Left, &k.Right, &k.Up, &k.Down} {
		b.SetEnabled(playing)
	}
	k.TimeTrial.SetEnabled(menu)
	k.Endless.SetEnabled(menu)
	k.Restart.SetEnabled(over)
	k.Menu.SetEnabled(over)
	k.Sessions.SetEnabled(!playing)
	return k
}

// Lookup translates a key message to a game key.
// Lookup ignores enabled state: the game decides what each key does per phase.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Key {
	s := msg.String()
	for _, m := range []struct {
		b   key.Binding
		key core.Key
	}{
		{k.Left, core.KeyLeft},
		{k.Right, core.KeyRight},
		{k.Up, core.KeyUp},
		{k.Down, core.KeyDown},
		{k.TimeTrial, core.KeyTimeTrial},
		{k.Endless, core.KeyEndless},
		{k.Restart, core.KeyRestart},
		{k.Menu, core.KeyMenu},
	} {
		for _, name := range m.b.Keys() {
			if name == s {
				return m.key
			}
		}
	}
	return core.KeyNone
}
