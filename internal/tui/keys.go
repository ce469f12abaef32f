package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	quit       key.Binding
	logout     key.Binding
	connect    key.Binding
	disconnect key.Binding
	pin        key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("L")),
	connect:    key.NewBinding(key.WithKeys("c", "enter")),
	disconnect: key.NewBinding(key.WithKeys("d")),
	pin:        key.NewBinding(key.WithKeys("p")),
}
