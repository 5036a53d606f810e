package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down       key.Binding
	Up         key.Binding
	Left       key.Binding
	Right      key.Binding
	JumpDown   key.Binding
	JumpUp     key.Binding
	Top        key.Binding
	Bottom     key.Binding
	NextHead   key.Binding
	PrevHead   key.Binding
	Search     key.Binding
	Contents   key.Binding
	NextEasing key.Binding
	PrevEasing key.Binding
	Slower     key.Binding
	Faster     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "line")),
		Up:         key.NewBinding(key.WithKeys("k", "up")),
		Left:       key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "pan")),
		Right:      key.NewBinding(key.WithKeys("l", "right")),
		JumpDown:   key.NewBinding(key.WithKeys("d", "pgdown", " "), key.WithHelp("d/u", "jump")),
		JumpUp:     key.NewBinding(key.WithKeys("u", "pgup")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "top/bottom")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end")),
		NextHead:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n/N", "heading")),
		PrevHead:   key.NewBinding(key.WithKeys("N")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Contents:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "contents")),
		NextEasing: key.NewBinding(key.WithKeys("e"), key.WithHelp("e/E", "easing")),
		PrevEasing: key.NewBinding(key.WithKeys("E")),
		Slower:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "duration")),
		Faster:     key.NewBinding(key.WithKeys("-")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Top, k.NextHead, k.Search, k.Contents, k.NextEasing, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Left, k.JumpDown, k.Top},
		{k.NextHead, k.Search, k.Contents},
		{k.NextEasing, k.Slower, k.Help, k.Quit},
	}
}
