package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the preview.
type KeyMap struct {
	Home         key.Binding
	Installation key.Binding
	Privacy      key.Binding
	Next         key.Binding
	Prev         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap is the built-in key binding set. Scrolling uses the
// viewport's own bindings (arrows, j/k, page up/down).
var DefaultKeyMap = KeyMap{
	Home: key.NewBinding(
		key.WithKeys("1", "h"),
		key.WithHelp("1/h", "home"),
	),
	Installation: key.NewBinding(
		key.WithKeys("2", "i"),
		key.WithHelp("2/i", "installation"),
	),
	Privacy: key.NewBinding(
		key.WithKeys("3", "p"),
		key.WithHelp("3/p", "privacy"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Installation, k.Privacy, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Installation, k.Privacy},
		{k.Next, k.Prev, k.Quit},
	}
}
