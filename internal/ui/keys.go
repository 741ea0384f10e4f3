package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Menu     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Open     key.Binding
	Select   key.Binding
	Clear    key.Binding
	Close    key.Binding
	Copy     key.Binding
	About    key.Binding
	Terms    key.Binding
	Privacy  key.Binding
	Scroll   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Menu:     key.NewBinding(key.WithKeys("ctrl+o", "f2"), key.WithHelp("ctrl+o", "menu")),
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/quit")),
		Close:    key.NewBinding(key.WithKeys("esc", "enter", "q"), key.WithHelp("esc", "close")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy number")),
		About:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Terms:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "terms")),
		Privacy:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "privacy")),
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
	}
}

func (k keyMap) mainHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Menu, k.Clear, k.Quit}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.About, k.Terms, k.Privacy, k.Menu}
}

func (k keyMap) modalHelp(copyable bool) []key.Binding {
	if copyable {
		return []key.Binding{k.Scroll, k.Copy, k.Close}
	}
	return []key.Binding{k.Scroll, k.Close}
}
