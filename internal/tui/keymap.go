package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zephyrtronium/calc/keypad"
)

// keyMap is the terminal keys that do not type a calculator key directly.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
	Shift key.Binding
	Del   key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓/←/→", "move"),
		),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Shift: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "shift"),
		),
		Del: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "DEL"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete", "ctrl+l"),
			key.WithHelp("del", "AC"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Press, k.Shift, k.Del, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// runeKeys are typed shortcuts for keys with no ASCII name of one rune.
var runeKeys = map[string]keypad.Key{
	"a": keypad.Ans,
	"l": keypad.Log,
	"p": keypad.Pi,
	"r": keypad.Sqrt,
	"s": keypad.Sin,
	"x": keypad.Sci,
}

// typed returns the calculator key for text typed at the terminal.
func typed(text string) (keypad.Key, bool) {
	if k, ok := runeKeys[text]; ok {
		return k, true
	}
	k, err := keypad.ParseKey(text)
	if err != nil {
		return "", false
	}
	return k, true
}
