package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding
	Mode   key.Binding
	Start  key.Binding
	Stop   key.Binding
	Sound  key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Easy:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", "difficulty")),
		Medium: key.NewBinding(key.WithKeys("2")),
		Hard:   key.NewBinding(key.WithKeys("3")),
		Mode:   key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "mode")),
		Start:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Stop:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
		Sound:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sound")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// playing toggles the bindings that only apply outside a session.
func (k *keyMap) playing(on bool, stoppable bool) {
	for _, b := range []*key.Binding{&k.Easy, &k.Medium, &k.Hard, &k.Mode, &k.Start, &k.Theme} {
		b.SetEnabled(!on)
	}
	k.Stop.SetEnabled(on && stoppable)
	if on {
		k.Quit.SetKeys("ctrl+c")
		k.Quit.SetHelp("ctrl+c", "quit")
	} else {
		k.Quit.SetKeys("ctrl+c", "q")
		k.Quit.SetHelp("q", "quit")
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Easy, k.Mode, k.Start, k.Stop, k.Sound, k.Theme, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
