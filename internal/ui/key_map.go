package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	nextTab  key.Binding
	words    key.Binding
	favs     key.Binding
	history  key.Binding
	favorite key.Binding
	showHelp key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		nextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		words:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "words")),
		favs:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "favorites")),
		history:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "history")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		showHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.enter, k.favorite, k.nextTab, k.showHelp, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.nextTab, k.words, k.favs, k.history},
		{k.favorite, k.back, k.showHelp, k.quit},
	}
}
