package keys

import "github.com/charmbracelet/bubbles/key"

// Common key bindings used across TUI commands
type CommonKeys struct {
	Quit key.Binding
	Help key.Binding
}

func NewCommonKeys() CommonKeys {
	return CommonKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// BrowseKeys are the bindings of the endpoint browser
type BrowseKeys struct {
	CommonKeys
	Up        key.Binding
	Down      key.Binding
	Refresh   key.Binding
	ToggleUSB key.Binding
}

func NewBrowseKeys() BrowseKeys {
	return BrowseKeys{
		CommonKeys: NewCommonKeys(),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "rescan"),
		),
		ToggleUSB: key.NewBinding(
			key.WithKeys("u", "U"),
			key.WithHelp("u", "usb only"),
		),
	}
}

func (k BrowseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Refresh, k.ToggleUSB, k.Quit}
}

func (k BrowseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh, k.ToggleUSB},
		{k.Help, k.Quit},
	}
}
