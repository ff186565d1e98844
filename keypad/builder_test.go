package keypad_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/keypad"
)

// state is everything observable about a Builder.
type state struct {
	internal string
	display  string
	powers   int
	pending  bool
	len      int
}

func stateOf(b *keypad.Builder) state {
	return state{
		internal: b.Expression(),
		display:  b.Display(),
		powers:   b.OpenPowerGroups(),
		pending:  b.PendingImplicitClose(),
		len:      b.Len(),
	}
}

func build(answer string, keys ...keypad.Key) *keypad.Builder {
	b := keypad.NewBuilder(answer)
	for _, k := range keys {
		b.Submit(k)
	}
	return b
}

func TestBuilder(t *testing.T) {
	cases := []struct {
		name     string
		answer   string
		keys     []keypad.Key
		internal string
		display  string
		powers   int
		pending  bool
	}{
		{
			name:     "empty",
			internal: "",
			display:  "",
		},
		{
			name:     "digits",
			keys:     []keypad.Key{keypad.Key7, keypad.Plus, keypad.Key3},
			internal: "7+3",
			display:  "7+3",
		},
		{
			name:     "pow-open",
			keys:     []keypad.Key{keypad.Pow},
			internal: "**(",
			display:  "<sup>(",
			powers:   1,
		},
		{
			name:     "pow",
			keys:     []keypad.Key{keypad.Key2, keypad.Pow, keypad.Key3, keypad.Close},
			internal: "2**(3)",
			display:  "2<sup>(3)</sup>",
		},
		{
			name:     "root-in-pow",
			keys:     []keypad.Key{keypad.Key2, keypad.Pow, keypad.Sqrt, keypad.Key9, keypad.Close, keypad.Close},
			internal: "2**(math.sqrt(9))",
			display:  "2<sup>(√(9))</sup>",
		},
		{
			name:     "root-in-pow-open",
			keys:     []keypad.Key{keypad.Key2, keypad.Pow, keypad.Sqrt, keypad.Key9, keypad.Close},
			internal: "2**(math.sqrt(9)",
			display:  "2<sup>(√(9)",
			powers:   1,
		},
		{
			name:     "paren-in-pow",
			keys:     []keypad.Key{keypad.Pow, keypad.Open, keypad.Key1, keypad.Close, keypad.Close},
			internal: "**((1))",
			display:  "<sup>((1))</sup>",
		},
		{
			name:     "pow-in-paren",
			keys:     []keypad.Key{keypad.Open, keypad.Key2, keypad.Pow, keypad.Key3, keypad.Close, keypad.Close},
			internal: "(2**(3))",
			display:  "(2<sup>(3)</sup>)",
		},
		{
			name:     "exp",
			keys:     []keypad.Key{keypad.Exp, keypad.Key2, keypad.Close},
			internal: "e**(2)",
			display:  "e<sup>(2)</sup>",
		},
		{
			name:     "sci",
			keys:     []keypad.Key{keypad.Key3, keypad.Sci, keypad.Key2, keypad.Close},
			internal: "3*10**(2)",
			display:  "3*10<sup>(2)</sup>",
		},
		{
			name:     "sqrt",
			keys:     []keypad.Key{keypad.Sqrt, keypad.Key4, keypad.Close},
			internal: "math.sqrt(4)",
			display:  "√(4)",
		},
		{
			name:     "cbrt",
			keys:     []keypad.Key{keypad.Cbrt, keypad.Key8},
			internal: "math.cbrt(8",
			display:  "∛(8",
		},
		{
			name:     "logs",
			keys:     []keypad.Key{keypad.Log, keypad.Key1, keypad.Key0, keypad.Key0, keypad.Close, keypad.Plus, keypad.Ln, keypad.E, keypad.Close},
			internal: "math.log10(100)+math.log(e)",
			display:  "log(100)+ln(e)",
		},
		{
			name:     "sin-open",
			keys:     []keypad.Key{keypad.Sin, keypad.Key3, keypad.Key0},
			internal: "math.sin(math.radians(30",
			display:  "sin(30",
			pending:  true,
		},
		{
			name:     "sin",
			keys:     []keypad.Key{keypad.Sin, keypad.Key3, keypad.Key0, keypad.Close},
			internal: "math.sin(math.radians(30))",
			display:  "sin(30)",
		},
		{
			name:     "sin-nested",
			keys:     []keypad.Key{keypad.Sin, keypad.Sin, keypad.Key3, keypad.Key0, keypad.Close, keypad.Close},
			internal: "math.sin(math.radians(math.sin(math.radians(30))))",
			display:  "sin(sin(30))",
		},
		{
			name:     "sin-paren",
			keys:     []keypad.Key{keypad.Sin, keypad.Open, keypad.Key3, keypad.Close},
			internal: "math.sin(math.radians((3)",
			display:  "sin((3)",
			pending:  true,
		},
		{
			name:     "asin",
			keys:     []keypad.Key{keypad.Asin, keypad.Key0, keypad.Point, keypad.Key5, keypad.Close},
			internal: "math.degrees(math.asin(0.5))",
			display:  "sin⁻¹(0.5)",
		},
		{
			name:     "mod",
			keys:     []keypad.Key{keypad.Key7, keypad.Mod, keypad.Key3},
			internal: "7%3",
			display:  "7 MOD 3",
		},
		{
			name:     "consts",
			keys:     []keypad.Key{keypad.Key2, keypad.Pi, keypad.E},
			internal: "2πe",
			display:  "2πe",
		},
		{
			name:     "stray-close",
			keys:     []keypad.Key{keypad.Close},
			internal: ")",
			display:  ")",
		},
		{
			name:     "minus-without-answer",
			keys:     []keypad.Key{keypad.Minus, keypad.Key5},
			internal: "-5",
			display:  "-5",
		},
		{
			name:     "leading-plus",
			answer:   "4",
			keys:     []keypad.Key{keypad.Plus, keypad.Key1},
			internal: "4+1",
			display:  "ANS+1",
		},
		{
			name:     "leading-minus",
			answer:   "-2.5",
			keys:     []keypad.Key{keypad.Minus, keypad.Key1},
			internal: "-2.5-1",
			display:  "ANS-1",
		},
		{
			name:     "leading-pow",
			answer:   "4",
			keys:     []keypad.Key{keypad.Pow, keypad.Key2, keypad.Close},
			internal: "4**(2)",
			display:  "ANS<sup>(2)</sup>",
		},
		{
			name:     "leading-sci",
			answer:   "4",
			keys:     []keypad.Key{keypad.Sci, keypad.Key2},
			internal: "4*10**(2",
			display:  "ANS*10<sup>(2",
			powers:   1,
		},
		{
			name:     "leading-mod",
			answer:   "4",
			keys:     []keypad.Key{keypad.Mod, keypad.Key3},
			internal: "4%3",
			display:  "ANS MOD 3",
		},
		{
			name:     "ans",
			answer:   "4",
			keys:     []keypad.Key{keypad.Ans, keypad.Times, keypad.Key2},
			internal: "4*2",
			display:  "ANS*2",
		},
		{
			name:     "not-leading",
			answer:   "4",
			keys:     []keypad.Key{keypad.Key1, keypad.Plus},
			internal: "1+",
			display:  "1+",
		},
		{
			name:     "function-not-leading",
			answer:   "4",
			keys:     []keypad.Key{keypad.Sqrt, keypad.Key9},
			internal: "math.sqrt(9",
			display:  "√(9",
		},
		{
			name:     "exp-not-leading",
			answer:   "4",
			keys:     []keypad.Key{keypad.Exp, keypad.Key1},
			internal: "e**(1",
			display:  "e<sup>(1",
			powers:   1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := build(c.answer, c.keys...)
			if got := b.Expression(); got != c.internal {
				t.Errorf("wrong internal expression: want %q, got %q", c.internal, got)
			}
			if got := b.Display(); got != c.display {
				t.Errorf("wrong display: want %q, got %q", c.display, got)
			}
			if got := b.OpenPowerGroups(); got != c.powers {
				t.Errorf("wrong open power groups: want %d, got %d", c.powers, got)
			}
			if got := b.PendingImplicitClose(); got != c.pending {
				t.Errorf("wrong pending close: want %t, got %t", c.pending, got)
			}
		})
	}
}

func TestBuilderSubmitReturnsDisplay(t *testing.T) {
	b := keypad.NewBuilder("")
	for _, k := range []keypad.Key{keypad.Key2, keypad.Pow, keypad.Key3, keypad.Close, keypad.Del} {
		if got, want := b.Submit(k), b.Display(); got != want {
			t.Errorf("after %s: Submit returned %q, Display returned %q", k, got, want)
		}
	}
}

func TestBuilderDel(t *testing.T) {
	cases := []struct {
		name     string
		answer   string
		keys     []keypad.Key
		internal string
		display  string
		powers   int
	}{
		{
			name: "empty",
			keys: []keypad.Key{keypad.Del, keypad.Del},
		},
		{
			name:     "digit",
			keys:     []keypad.Key{keypad.Key1, keypad.Key2, keypad.Del},
			internal: "1",
			display:  "1",
		},
		{
			name:     "sup-close",
			keys:     []keypad.Key{keypad.Key2, keypad.Pow, keypad.Key3, keypad.Close, keypad.Del},
			internal: "2**(3",
			display:  "2<sup>(3",
			powers:   1,
		},
		{
			name:     "sup-open",
			keys:     []keypad.Key{keypad.Key2, keypad.Pow, keypad.Del},
			internal: "2",
			display:  "2",
		},
		{
			name:     "ans",
			answer:   "123.5",
			keys:     []keypad.Key{keypad.Key2, keypad.Times, keypad.Ans, keypad.Del},
			internal: "2*",
			display:  "2*",
		},
		{
			name:     "leading",
			answer:   "9",
			keys:     []keypad.Key{keypad.Sci, keypad.Del},
			internal: "",
			display:  "",
		},
		{
			name:     "mod",
			keys:     []keypad.Key{keypad.Key7, keypad.Mod, keypad.Del},
			internal: "7",
			display:  "7",
		},
		{
			name:     "sin-close",
			keys:     []keypad.Key{keypad.Sin, keypad.Key9, keypad.Key0, keypad.Close, keypad.Del},
			internal: "math.sin(math.radians(90",
			display:  "sin(90",
		},
		{
			name:     "sin-open",
			keys:     []keypad.Key{keypad.Key2, keypad.Sin, keypad.Del},
			internal: "2",
			display:  "2",
		},
		{
			name:     "inner-close",
			keys:     []keypad.Key{keypad.Pow, keypad.Log, keypad.Key1, keypad.Close, keypad.Close, keypad.Del, keypad.Del},
			internal: "**(math.log10(1",
			display:  "<sup>(log(1",
			powers:   2,
		},
		{
			name:     "past-start",
			keys:     []keypad.Key{keypad.Key1, keypad.Del, keypad.Del, keypad.Key2},
			internal: "2",
			display:  "2",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := build(c.answer, c.keys...)
			if got := b.Expression(); got != c.internal {
				t.Errorf("wrong internal expression: want %q, got %q", c.internal, got)
			}
			if got := b.Display(); got != c.display {
				t.Errorf("wrong display: want %q, got %q", c.display, got)
			}
			if got := b.OpenPowerGroups(); got != c.powers {
				t.Errorf("wrong open power groups: want %d, got %d", c.powers, got)
			}
		})
	}
}

// insertions are the keys which append a token.
var insertions = []keypad.Key{
	keypad.Key0, keypad.Key5, keypad.Point,
	keypad.Plus, keypad.Minus, keypad.Times, keypad.Divide, keypad.Mod,
	keypad.Open, keypad.Close, keypad.Pi, keypad.E,
	keypad.Pow, keypad.Exp, keypad.Sci,
	keypad.Sqrt, keypad.Cbrt, keypad.Log, keypad.Ln, keypad.Sin, keypad.Asin,
	keypad.Ans,
}

func TestDelInvertsInsertion(t *testing.T) {
	prefixes := [][]keypad.Key{
		nil,
		{keypad.Key2},
		{keypad.Key2, keypad.Pow},
		{keypad.Key2, keypad.Pow, keypad.Sqrt, keypad.Key9},
		{keypad.Key2, keypad.Pow, keypad.Sqrt, keypad.Key9, keypad.Close},
		{keypad.Sin, keypad.Key3},
		{keypad.Sin, keypad.Key3, keypad.Close},
		{keypad.Open, keypad.Sin},
		{keypad.Ans, keypad.Mod},
	}
	for _, answer := range []string{"", "42"} {
		for _, prefix := range prefixes {
			for _, k := range insertions {
				b := build(answer, prefix...)
				before := stateOf(b)
				b.Submit(k)
				if b.Len() != before.len+1 {
					t.Errorf("answer %q, %v then %s: %d tokens, want %d", answer, prefix, k, b.Len(), before.len+1)
				}
				b.Submit(keypad.Del)
				if after := stateOf(b); after != before {
					t.Errorf("answer %q, %v then %s then DEL:\nwant %+v\ngot  %+v", answer, prefix, k, before, after)
				}
			}
		}
	}
}

func TestClear(t *testing.T) {
	b := build("7", keypad.Key2, keypad.Pow, keypad.Sin, keypad.Key3)
	b.Submit(keypad.Clear)
	once := stateOf(b)
	b.Submit(keypad.Clear)
	if twice := stateOf(b); twice != once {
		t.Errorf("second clear changed state:\nonce  %+v\ntwice %+v", once, twice)
	}
	if once != (state{}) {
		t.Errorf("clear left %+v", once)
	}
	if b.Answer() != "7" {
		t.Errorf("clear changed answer to %q", b.Answer())
	}
	// The expression starts over, so an operator applies to the answer.
	b.Submit(keypad.Plus)
	if got := b.Display(); got != "ANS+" {
		t.Errorf("operator after clear: want %q, got %q", "ANS+", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		keys []keypad.Key
		want string
	}{
		{"add", []keypad.Key{keypad.Key1, keypad.Key2, keypad.Plus, keypad.Key3}, "15"},
		{"prec", []keypad.Key{keypad.Key1, keypad.Key2, keypad.Plus, keypad.Key3, keypad.Times, keypad.Key4}, "24"},
		{"div", []keypad.Key{keypad.Key9, keypad.Divide, keypad.Key4}, "2.25"},
		{"sub", []keypad.Key{keypad.Key1, keypad.Minus, keypad.Key2, keypad.Minus, keypad.Key3}, "-4"},
		{"decimal", []keypad.Key{keypad.Key0, keypad.Point, keypad.Key5, keypad.Times, keypad.Key3}, "1.5"},
		{"mod", []keypad.Key{keypad.Key1, keypad.Key7, keypad.Mod, keypad.Key5}, "2"},
	}
	ev := calc.NewEvaluator()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := build("", c.keys...)
			var want string
			for _, k := range c.keys {
				if k == keypad.Mod {
					want += "%"
					continue
				}
				want += string(k)
			}
			if got := b.Expression(); got != want {
				t.Errorf("internal expression is not the keys: want %q, got %q", want, got)
			}
			if got := ev.Evaluate(b.Expression()); got != c.want {
				t.Errorf("wrong value: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestBuilderKeys(t *testing.T) {
	keys := []keypad.Key{keypad.Key1, keypad.Pow, keypad.Key2, keypad.Close}
	b := build("", keys...)
	got := b.Keys()
	if len(got) != len(keys) {
		t.Fatalf("want %v, got %v", keys, got)
	}
	for i := range keys {
		if got[i] != keys[i] {
			t.Errorf("key %d: want %s, got %s", i, keys[i], got[i])
		}
	}
}

func TestBuilderPanics(t *testing.T) {
	cases := []struct {
		name string
		key  keypad.Key
	}{
		{"equals", keypad.Equals},
		{"shift", keypad.Shift},
		{"unknown", keypad.Key("sqrt(")},
		{"empty", keypad.Key("")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%q did not panic", c.key)
				}
			}()
			keypad.NewBuilder("").Submit(c.key)
		})
	}
}
