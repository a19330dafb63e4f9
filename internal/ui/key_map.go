package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	back    key.Binding
	yes     key.Binding
	no      key.Binding
	nextTab key.Binding
	prevTab key.Binding
	drawer  key.Binding
	remove  key.Binding
	clear   key.Binding
	insert  key.Binding
	edit    key.Binding
	switchF key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev filter")),
		right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next filter")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		nextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		prevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		drawer:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		remove:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x/d", "remove")),
		clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		insert:  key.NewBinding(key.WithKeys("i", "a"), key.WithHelp("i", "type")),
		edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		switchF: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "switch form")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextTab, k.drawer, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.nextTab, k.prevTab, k.drawer},
		{k.remove, k.clear, k.insert, k.edit},
		{k.yes, k.no, k.quit},
	}
}
