package keypad

import "strconv"

// Key is the identity of one calculator key.
type Key string

// Digit and operator keys.
const (
	Key0 Key = "0"
	Key1 Key = "1"
	Key2 Key = "2"
	Key3 Key = "3"
	Key4 Key = "4"
	Key5 Key = "5"
	Key6 Key = "6"
	Key7 Key = "7"
	Key8 Key = "8"
	Key9 Key = "9"

	Point  Key = "."
	Plus   Key = "+"
	Minus  Key = "-"
	Times  Key = "*"
	Divide Key = "/"
	Mod    Key = "MOD"
	Open   Key = "("
	Close  Key = ")"
	Pi     Key = "π"
	E      Key = "e"
)

// Function keys. Each opens a group closed by the next Close.
const (
	Pow  Key = "x^y"
	Exp  Key = "e^y"
	Sci  Key = "*10^y"
	Sqrt Key = "√"
	Cbrt Key = "∛"
	Log  Key = "log"
	Ln   Key = "ln"
	Sin  Key = "sin"
	Asin Key = "sin⁻¹"
)

// Control keys.
const (
	Ans    Key = "ANS"
	Del    Key = "DEL"
	Clear  Key = "AC"
	Equals Key = "="
	// Shift changes the meaning of the remappable keys. It never reaches a
	// Builder.
	Shift Key = "shift"
)

// glyphs holds every key and the caption of its button.
var glyphs = map[Key]string{
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	Point: ".", Plus: "+", Minus: "-", Times: "*", Divide: "/",
	Mod: "MOD", Open: "(", Close: ")", Pi: "π", E: "e",

	Pow:  "xʸ",
	Exp:  "eʸ",
	Sci:  "*10ʸ",
	Sqrt: "√x",
	Cbrt: "∛x",
	Log:  "log",
	Ln:   "ln",
	Sin:  "sin",
	Asin: "sin⁻¹",

	Ans: "ANS", Del: "DEL", Clear: "AC", Equals: "=", Shift: "shift",
}

// aliases are the other spellings ParseKey accepts.
var aliases = map[string]Key{
	"xʸ":     Pow,
	"^":      Pow,
	"**":     Pow,
	"eʸ":     Exp,
	"*10ʸ":   Sci,
	"√x":     Sqrt,
	"sqrt":   Sqrt,
	"∛x":     Cbrt,
	"cbrt":   Cbrt,
	"asin":   Asin,
	"sin^-1": Asin,
	"pi":     Pi,
	"×":      Times,
	"÷":      Divide,
	"%":      Mod,
	"mod":    Mod,
	"ans":    Ans,
	"del":    Del,
	"ac":     Clear,
}

// Valid reports whether k is a calculator key.
func (k Key) Valid() bool {
	_, ok := glyphs[k]
	return ok
}

// String returns the canonical name of the key.
func (k Key) String() string {
	return string(k)
}

// mustValid panics if k is not a calculator key. Keys come from the shell,
// so an unknown key is a programming error rather than user input.
func mustValid(k Key) {
	if !k.Valid() {
		panic("keypad: invalid key " + strconv.Quote(string(k)))
	}
}

// ParseKey returns the key named by s. Canonical names, button captions such
// as "xʸ" and "√x", and a few ASCII spellings such as "sqrt" are accepted.
func ParseKey(s string) (Key, error) {
	if k := Key(s); k.Valid() {
		return k, nil
	}
	if k, ok := aliases[s]; ok {
		return k, nil
	}
	return "", &KeyError{Text: s}
}

// ParseKeys parses each of ss as a key. The error, if any, is for the first
// text that names no key.
func ParseKeys(ss ...string) ([]Key, error) {
	r := make([]Key, 0, len(ss))
	for _, s := range ss {
		k, err := ParseKey(s)
		if err != nil {
			return nil, err
		}
		r = append(r, k)
	}
	return r, nil
}

// KeyError is an error indicating text that names no key.
type KeyError struct {
	// Text is the text that was not recognized.
	Text string
}

func (err *KeyError) Error() string {
	return "keypad: no key " + strconv.Quote(err.Text)
}

// Layout returns the rows of the keypad as the calculator window arranges
// them, with remappable keys in their unshifted form.
func Layout() [][]Key {
	return [][]Key{
		{Shift, Pow, Sqrt, Log, Sin},
		{Pi, E, Open, Close, Mod},
		{Key7, Key8, Key9, Del, Clear},
		{Key4, Key5, Key6, Times, Divide},
		{Key1, Key2, Key3, Plus, Minus},
		{Key0, Point, Sci, Ans, Equals},
	}
}
