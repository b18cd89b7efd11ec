package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	End      key.Binding
	Sections []key.Binding
	Explore  key.Binding
	Resume   key.Binding
	CV       key.Binding
	Write    key.Binding
	Social   []key.Binding

	// form editing
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Escape    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "back to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
		Sections: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "about")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "skills")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "projects")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "activities")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "contact")),
		},
		Explore: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "explore projects"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "resume"),
		),
		CV: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cv"),
		),
		Write: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "write a message"),
		),
		Social: []key.Binding{
			key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "email")),
			key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "linkedin")),
			key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "github")),
			key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "leetcode")),
		},
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "launch"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop editing"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Explore, k.Write, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.End},
		k.Sections,
		{k.Explore, k.Resume, k.CV, k.Write},
		k.Social,
		{k.NextField, k.PrevField, k.Submit, k.Escape, k.Help, k.Quit},
	}
}

// editingHelp is shown while the contact form has focus.
type editingHelp struct{ k keyMap }

func (e editingHelp) ShortHelp() []key.Binding {
	return []key.Binding{e.k.NextField, e.k.PrevField, e.k.Submit, e.k.Escape}
}

func (e editingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}
