package keypad

import (
	"strings"

	"github.com/zephyrtronium/calc"
)

// Builder accumulates key presses into an expression. The zero value is an
// empty expression with an empty answer register. A Builder is not safe for
// concurrent use.
type Builder struct {
	toks []token
	// groups is the stack of groups not yet closed, innermost last.
	groups []*group
	// powers is the number of entries in groups that are power groups.
	powers int
	// answer is the text substituted for Ans.
	answer string
}

// token is one logical key press as it renders in each projection.
type token struct {
	key      Key
	internal string
	display  string
	// opens is the group this token opens, if any.
	opens *group
	// closes is the group this token closed, if any.
	closes *group
}

// group is a bracketed span opened by a function, exponent, or bracket key.
type group struct {
	// power is whether the group is a power group, i.e. whether its close
	// belongs to an exponent.
	power bool
	// owe is extra text the evaluator needs when the group closes.
	owe string
}

// opener describes how a function key renders and nests.
type opener struct {
	internal string
	display  string
	// power means the key always opens a power group. Other openers open one
	// only inside an existing power group.
	power bool
	owe   string
}

var openers = map[Key]opener{
	Pow:  {"**(", "<sup>(", true, ""},
	Exp:  {"e**(", "e<sup>(", true, ""},
	Sci:  {"*10**(", "*10<sup>(", true, ""},
	Sqrt: {"math.sqrt(", "√(", false, ""},
	Cbrt: {"math.cbrt(", "∛(", false, ""},
	Log:  {"math.log10(", "log(", false, ""},
	Ln:   {"math.log(", "ln(", false, ""},
	Sin:  {"math.sin(math.radians(", "sin(", false, ")"},
	Asin: {"math.degrees(math.asin(", "sin⁻¹(", false, ")"},
	Open: {"(", "(", false, ""},
}

// leading holds the display spelling of keys which, typed first, apply to
// the answer. Their internal spelling follows the answer text.
var leading = map[Key]opener{
	Plus:   {"+", "+", false, ""},
	Minus:  {"-", "-", false, ""},
	Times:  {"*", "*", false, ""},
	Divide: {"/", "/", false, ""},
	Mod:    {"%", " MOD ", false, ""},
	Pow:    {"**(", "<sup>(", true, ""},
	Sci:    {"*10**(", "*10<sup>(", true, ""},
}

const (
	// AnsMarker is the display text of the answer register.
	AnsMarker = "ANS"
	// SupOpen and SupClose delimit an exponent in display text.
	SupOpen  = "<sup>"
	SupClose = "</sup>"
)

// NewBuilder creates an empty Builder whose answer register holds answer.
func NewBuilder(answer string) *Builder {
	return &Builder{answer: answer}
}

// Submit applies one key and returns the new display text. Clear empties the
// expression, Del removes the last token, and any other key appends one
// token. Submit panics if k is Equals, Shift, or not a key at all; those
// belong to the Session.
func (b *Builder) Submit(k Key) string {
	mustValid(k)
	switch k {
	case Clear:
		b.Reset()
	case Del:
		b.pop()
	case Equals, Shift:
		panic("keypad: Builder cannot handle " + string(k))
	default:
		b.push(b.next(k))
	}
	return b.Display()
}

// next creates the token for k in the current state. A failed answer counts
// as no answer, so typing after an error starts fresh.
func (b *Builder) next(k Key) token {
	if len(b.toks) == 0 && b.answer != "" && b.answer != calc.ErrorText {
		if o, ok := leading[k]; ok {
			t := token{key: k, internal: b.answer + o.internal, display: AnsMarker + o.display}
			if o.power {
				t.opens = &group{power: true}
			}
			return t
		}
	}
	if o, ok := openers[k]; ok {
		return token{
			key:      k,
			internal: o.internal,
			display:  o.display,
			opens:    &group{power: o.power || b.powers > 0, owe: o.owe},
		}
	}
	switch k {
	case Ans:
		return token{key: k, internal: b.answer, display: AnsMarker}
	case Mod:
		return token{key: k, internal: "%", display: " MOD "}
	case Close:
		t := token{key: k, internal: ")", display: ")"}
		if len(b.groups) == 0 {
			// Nothing to close. The evaluator reports the mismatch.
			return t
		}
		g := b.groups[len(b.groups)-1]
		t.closes = g
		t.internal += g.owe
		if g.power && b.powers == 1 {
			t.display += SupClose
		}
		return t
	default:
		return token{key: k, internal: string(k), display: string(k)}
	}
}

func (b *Builder) push(t token) {
	switch {
	case t.opens != nil:
		b.groups = append(b.groups, t.opens)
		if t.opens.power {
			b.powers++
		}
	case t.closes != nil:
		b.groups = b.groups[:len(b.groups)-1]
		if t.closes.power {
			b.powers--
		}
	}
	b.toks = append(b.toks, t)
}

// pop removes the last token and reverses its effect on the groups. It does
// nothing on an empty expression.
func (b *Builder) pop() {
	if len(b.toks) == 0 {
		return
	}
	t := b.toks[len(b.toks)-1]
	b.toks = b.toks[:len(b.toks)-1]
	switch {
	case t.opens != nil:
		b.groups = b.groups[:len(b.groups)-1]
		if t.opens.power {
			b.powers--
		}
	case t.closes != nil:
		b.groups = append(b.groups, t.closes)
		if t.closes.power {
			b.powers++
		}
	}
}

// Reset empties the expression. The answer register is kept.
func (b *Builder) Reset() {
	b.toks = b.toks[:0]
	b.groups = b.groups[:0]
	b.powers = 0
}

// SetAnswer sets the text substituted for later Ans keys. Tokens already in
// the expression keep the answer they were entered with.
func (b *Builder) SetAnswer(answer string) {
	b.answer = answer
}

// Answer returns the answer register.
func (b *Builder) Answer() string {
	return b.answer
}

// Expression renders the expression for the evaluator.
func (b *Builder) Expression() string {
	var s strings.Builder
	for _, t := range b.toks {
		s.WriteString(t.internal)
	}
	return s.String()
}

// Display renders the expression for the user.
func (b *Builder) Display() string {
	var s strings.Builder
	for _, t := range b.toks {
		s.WriteString(t.display)
	}
	return s.String()
}

// Len returns the number of tokens in the expression.
func (b *Builder) Len() int {
	return len(b.toks)
}

// Keys returns the keys that produced the expression, after shift
// substitution.
func (b *Builder) Keys() []Key {
	r := make([]Key, len(b.toks))
	for i, t := range b.toks {
		r[i] = t.key
	}
	return r
}

// OpenPowerGroups returns the number of open power groups. The next Close
// ends the exponent in the display when this is 1.
func (b *Builder) OpenPowerGroups() int {
	return b.powers
}

// PendingImplicitClose reports whether an open group still owes the
// evaluator a bracket that the display does not show, as a sine does for the
// degree conversion inside it.
func (b *Builder) PendingImplicitClose() bool {
	for _, g := range b.groups {
		if g.owe != "" {
			return true
		}
	}
	return false
}
