package keypad

// shifted maps each remappable key to its meaning while shift is active.
var shifted = map[Key]Key{
	Sqrt: Cbrt,
	Pow:  Exp,
	Log:  Ln,
	Sin:  Asin,
}

// Remappable returns the keys whose meaning depends on the shift state, in
// keypad order.
func Remappable() []Key {
	return []Key{Pow, Sqrt, Log, Sin}
}

// Remap returns the key that base stands for in the given shift state. Keys
// that are not remappable stand for themselves.
func Remap(base Key, active bool) Key {
	if !active {
		return base
	}
	if k, ok := shifted[base]; ok {
		return k
	}
	return base
}

// Label returns the caption to paint on the button for base in the given
// shift state.
func Label(base Key, active bool) string {
	return glyphs[Remap(base, active)]
}
