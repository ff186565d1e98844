package calc

import (
	"math"
	"math/big"
)

// ErrorText is the text of a failed evaluation.
const ErrorText = "ERROR"

// DefaultDigits is the number of significant digits results are formatted to
// unless the Digits option says otherwise.
const DefaultDigits = 12

// Evaluator evaluates expression strings to display text. Every failure,
// whether in parsing or arithmetic, produces ErrorText, so an Evaluator never
// stops a calculator session. An Evaluator is not safe for concurrent use.
type Evaluator struct {
	ctx    *Context
	digits int
}

// NewEvaluator creates an Evaluator. Prec sets the working precision and
// Digits sets the formatting.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := Evaluator{ctx: NewContext(opts...), digits: DefaultDigits}
	for _, opt := range opts {
		if d, ok := opt.(digitsopt); ok && d > 0 {
			ev.digits = int(d)
		}
	}
	return &ev
}

// Evaluate evaluates src and returns the formatted result, or ErrorText if
// src does not evaluate.
func (ev *Evaluator) Evaluate(src string) string {
	r, _ := ev.EvaluateErr(src)
	return r
}

// EvaluateErr is like Evaluate, but also returns the reason evaluation failed.
// The text result is ErrorText whenever the error is non-nil.
func (ev *Evaluator) EvaluateErr(src string) (string, error) {
	a, err := Parse(src)
	if err != nil {
		return ErrorText, err
	}
	r := ev.ctx.Eval(a)
	if r == nil {
		return ErrorText, ev.ctx.Err()
	}
	// Results are for display and may be fed back as answers, so they must
	// fit in an ordinary float.
	if f, _ := r.Float64(); math.IsInf(f, 0) {
		return ErrorText, &OverflowError{}
	}
	return Format(r, ev.digits), nil
}

// Digits returns the number of significant digits ev formats results to.
func (ev *Evaluator) Digits() int {
	return ev.digits
}

// Format formats x to the given number of significant digits, using
// exponent notation only for very large or small magnitudes. Trailing zeros
// are dropped, and zero of either sign is "0". The output is valid input to
// Parse.
func Format(x *big.Float, digits int) string {
	if x.Sign() == 0 {
		return "0"
	}
	return x.Text('g', digits)
}
