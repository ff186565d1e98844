package calc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals. The function should set r to its
// result and should not use the value of r otherwise.
type Func interface {
	// Call evaluates the function. The function arguments are passed in
	// invoc, which has a length for which CanCall returned true. Call may
	// modify the elements of invoc.
	Call(ctx *Context, invoc []*big.Float, r *big.Float) error

	// CanCall returns whether the function can be called with n arguments.
	// Functions which can be called with one argument take a bracketed or
	// bare term following their names, so "sqrt 4" is "sqrt(4)". Functions
	// which can only be called with none are constants; a bracketed term
	// following them is a multiplication, so "π(2)" is "π * 2".
	CanCall(n int) bool
}

// mathfuncs is the closed vocabulary of the keypad. Each name is also
// available with a "math." prefix.
var mathfuncs = map[string]Func{
	"sqrt":    Monadic(sqrt),
	"cbrt":    Monadic(cbrt),
	"log10":   Monadic(log10),
	"log":     Monadic(ln),
	"sin":     Monadic(sin),
	"asin":    Monadic(asin),
	"radians": Monadic(radians),
	"degrees": Monadic(degrees),

	// constants
	"pi": Niladic(bigfloat.Pi),
	"e":  Niladic(euler),
}

// builtins is the default vocabulary for parsing.
var builtins = func() map[string]Func {
	m := make(map[string]Func, 2*len(mathfuncs)+1)
	for k, v := range mathfuncs {
		m[k] = v
		m["math."+k] = v
	}
	m["π"] = mathfuncs["pi"]
	return m
}()

// Names returns the names the parser accepts by default, in no particular
// order.
func Names() []string {
	r := make([]string, 0, len(builtins))
	for k := range builtins {
		r = append(r, k)
	}
	return r
}

func sqrt(out, in *big.Float) *big.Float {
	if in.Sign() < 0 {
		panic(domainErr(in, "sqrt"))
	}
	return out.Sqrt(in)
}

func cbrt(out, in *big.Float) *big.Float {
	if in.Sign() == 0 {
		return out.SetInt64(0)
	}
	neg := in.Signbit()
	x := new(big.Float).SetPrec(out.Prec()).Abs(in)
	third := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
	third.Quo(third, big.NewFloat(3))
	bigfloat.Pow(out, x, third)
	if neg {
		out.Neg(out)
	}
	return out
}

func ln(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(domainErr(in, "log"))
	}
	return bigfloat.Log(out, in)
}

func log10(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(domainErr(in, "log10"))
	}
	bigfloat.Log(out, in)
	in.SetPrec(out.Prec()).SetFloat64(10)
	bigfloat.Log(in, in)
	return out.Quo(out, in)
}

func sin(out, in *big.Float) *big.Float {
	if in.IsInf() {
		panic(domainErr(in, "sin"))
	}
	x, _ := in.Float64()
	return out.SetFloat64(math.Sin(x))
}

func asin(out, in *big.Float) *big.Float {
	x, _ := in.Float64()
	if x < -1 || x > 1 {
		panic(domainErr(in, "asin"))
	}
	return out.SetFloat64(math.Asin(x))
}

func radians(out, in *big.Float) *big.Float {
	pi := bigfloat.Pi(new(big.Float).SetPrec(out.Prec()))
	out.Mul(in, pi)
	return out.Quo(out, big.NewFloat(180))
}

func degrees(out, in *big.Float) *big.Float {
	pi := bigfloat.Pi(new(big.Float).SetPrec(out.Prec()))
	out.Mul(in, big.NewFloat(180))
	return out.Quo(out, pi)
}

func euler(out *big.Float) *big.Float {
	var one big.Float
	one.SetFloat64(1)
	return bigfloat.Exp(out, &one)
}

// maxLog2 bounds the binary magnitude of a power before it is computed.
// Anything larger is reported as an overflow, and anything smaller in the
// other direction is rounded to zero.
const maxLog2 = 1 << 24

// pow sets z to x**y. z may alias x or y. Integer exponents are computed by
// repeated squaring, so negative bases are allowed with them.
func pow(z, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return domainErr(x, "**")
		}
		z.SetInt64(0)
		return nil
	case x.IsInf(), y.IsInf():
		return &OverflowError{Op: "**"}
	}
	var mant big.Float
	exp := x.MantExp(&mant)
	m, _ := mant.Float64()
	yf, _ := y.Float64()
	switch est := yf * (float64(exp) + math.Log2(math.Abs(m))); {
	case est > maxLog2:
		return &OverflowError{Op: "**"}
	case est < -maxLog2:
		z.SetInt64(0)
		return nil
	}
	if y.IsInt() {
		if n, acc := y.Int64(); acc == big.Exact {
			powi(z, x, n)
			return nil
		}
	}
	if x.Signbit() {
		return domainErr(x, "**")
	}
	bigfloat.Pow(z, x, y)
	return nil
}

// powi sets z to x**n.
func powi(z, x *big.Float, n int64) {
	prec := z.Prec() + 32
	b := new(big.Float).SetPrec(prec).Set(x)
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	k := uint64(n)
	if n < 0 {
		k = uint64(-(n + 1)) + 1
	}
	for {
		if k&1 != 0 {
			r.Mul(r, b)
		}
		k >>= 1
		if k == 0 {
			break
		}
		b.Mul(b, b)
	}
	if n < 0 {
		r.Quo(new(big.Float).SetPrec(prec).SetInt64(1), r)
	}
	z.Set(r)
}

// mod sets z to the floored modulus of x and y, which has the sign of y.
// z may alias x.
func mod(z, x, y *big.Float) error {
	if y.Sign() == 0 {
		return domainErr(y, "%")
	}
	if x.IsInf() || y.IsInf() {
		return domainErr(x, "%")
	}
	prec := z.Prec() + 32
	q := new(big.Float).SetPrec(prec).Quo(x, y)
	if q.IsInf() {
		return &OverflowError{Op: "%"}
	}
	qi, _ := q.Int(nil)
	t := new(big.Float).SetPrec(prec).SetInt(qi)
	if t.Cmp(q) > 0 {
		t.Sub(t, big.NewFloat(1))
	}
	t.Mul(t, y)
	z.Sub(x, t)
	return nil
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (m monadic) Call(ctx *Context, invoc []*big.Float, r *big.Float) (err error) {
	in := invoc[0]
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err = r.(error) // panic if not error
		var de *DomainError
		if errors.As(err, &de) || errors.As(err, &big.ErrNaN{}) {
			return
		}
		panic(err)
	}()
	r.SetPrec(ctx.Prec())
	m.f(r, in)
	return nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. f must set out to its
// result, to the precision of out; its return value is always ignored. If f is
// called on an argument outside f's domain, it should panic with a
// *DomainError or a big.ErrNaN.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (n niladic) Call(ctx *Context, invoc []*big.Float, r *big.Float) error {
	r.SetPrec(ctx.Prec())
	n.f(r)
	return nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func. f must set out to its result; its return
// value is always ignored. Unlike Monadic, the wrapped function is expected
// never to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the out-of-domain argument, or nil if it is not known.
	X *big.Float
	// Func is a name identifying the function or operator.
	Func string
}

func domainErr(x *big.Float, fn string) *DomainError {
	return &DomainError{X: new(big.Float).Copy(x), Func: fn}
}

func (err *DomainError) Error() string {
	r := "argument outside domain"
	if err.X != nil {
		r = err.X.String() + " outside domain"
	}
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// OverflowError is an error returned when a result is too large to
// represent.
type OverflowError struct {
	// Op is the function or operator that overflowed, if known.
	Op string
}

func (err *OverflowError) Error() string {
	if err.Op == "" {
		return "result out of range"
	}
	return "result of " + err.Op + " out of range"
}
