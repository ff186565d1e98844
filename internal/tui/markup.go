package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/calc/keypad"
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '(': '⁽', ')': '⁾', '=': '⁼',
	'e': 'ᵉ', 'i': 'ⁱ', 'n': 'ⁿ', 'l': 'ˡ', 'o': 'ᵒ', 'g': 'ᵍ', 's': 'ˢ',
}

// Superscript renders display markup as plain text, raising exponents with
// Unicode superscript characters where they exist. Text inside an exponent
// with no superscript form is kept as is.
func Superscript(display string) string {
	var b strings.Builder
	depth := 0
	for len(display) > 0 {
		switch {
		case strings.HasPrefix(display, keypad.SupOpen):
			depth++
			display = display[len(keypad.SupOpen):]
			continue
		case strings.HasPrefix(display, keypad.SupClose):
			// One close ends every exponent opened inside the outermost.
			depth = 0
			display = display[len(keypad.SupClose):]
			continue
		}
		r, sz := utf8.DecodeRuneInString(display)
		display = display[sz:]
		if depth > 0 {
			if s, ok := superscripts[r]; ok {
				r = s
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Plain removes the superscript markup from display text, writing exponents
// with a caret.
func Plain(display string) string {
	r := strings.NewReplacer(keypad.SupOpen, "^", keypad.SupClose, "")
	return r.Replace(display)
}
