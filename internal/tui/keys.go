package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	toggle    key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	about     key.Binding
	submit    key.Binding
	changeKey key.Binding
	forget    key.Binding
	reset     key.Binding
	health    key.Binding
	report    key.Binding
	copy      key.Binding
	drop      key.Binding
	again     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	toggle:    key.NewBinding(key.WithKeys(" ", "left", "right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	about:     key.NewBinding(key.WithKeys("f1")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	changeKey: key.NewBinding(key.WithKeys("ctrl+k")),
	forget:    key.NewBinding(key.WithKeys("ctrl+f")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	health:    key.NewBinding(key.WithKeys("ctrl+b")),
	report:    key.NewBinding(key.WithKeys("ctrl+o")),
	copy:      key.NewBinding(key.WithKeys("c")),
	drop:      key.NewBinding(key.WithKeys("f")),
	again:     key.NewBinding(key.WithKeys("n")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}

