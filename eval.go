package calc

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// Option is an option used when creating a Context or an Evaluator.
type Option interface {
	option()
}

type (
	precopt   uint
	digitsopt int
)

func (precopt) option()   {}
func (digitsopt) option() {}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) Option {
	return precopt(prec)
}

// Digits sets the number of significant digits an Evaluator formats results
// to. Contexts ignore it.
func Digits(n int) Option {
	return digitsopt(n)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...Option) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. an argument to a function is outside the function's domain, then the
// result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		// Don't overwrite a result the caller might still hold.
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		panic("calc: Eval during Eval")
	}
	err := ctx.run(e.n)
	if err == nil && ctx.top().IsInf() {
		err = &OverflowError{}
	}
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return nil
	}
	return ctx.Result()
}

// run evaluates n, converting the NaN panics of math/big into errors.
func (ctx *Context) run(n *node) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var nan big.ErrNaN
		if e, ok := r.(error); ok && errors.As(e, &nan) {
			err = &DomainError{}
			return
		}
		panic(r)
	}()
	return n.eval(ctx)
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("calc: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("calc: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The returned
// context has no Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...Option) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	// Loop backward so we apply the last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Copy numbers only if the new precision is no higher than the old, so
	// that we always use the precision we need.
	if n.prec <= ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future node evaluations.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from its text.
func (ctx *Context) num(s string) *big.Float {
	if r := ctx.nums[s]; r != nil {
		return r
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		// Numbers from the lexer are never signed.
		r = new(big.Float).SetInf(false)
	default:
		panic("calc: invalid number: " + s + " (" + err.Error() + ")")
	}
	ctx.nums[s] = r
	return r
}

// binary evaluates both operands of n and returns them. The result is to be
// stored into l.
func (n *node) binary(ctx *Context) (l, r *big.Float, err error) {
	if err := n.left.eval(ctx); err != nil {
		return nil, nil, err
	}
	if err := n.right.eval(ctx); err != nil {
		return nil, nil, err
	}
	r = ctx.pop()
	l = ctx.top()
	return l, r, nil
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push().Set(ctx.num(n.name))
	case nodeCall:
		r := ctx.push()
		k := len(ctx.stack)
		if n.left != nil {
			if err := n.left.eval(ctx); err != nil {
				return err
			}
		}
		invoc := ctx.stack[k:len(ctx.stack):len(ctx.stack)]
		if err := n.fn.Call(ctx, invoc, r); err != nil {
			return err
		}
		ctx.stack = ctx.stack[:k]
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		v := ctx.top()
		v.Neg(v)
	case nodeNop:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
	case nodeAdd:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		l.Add(l, r)
	case nodeSub:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		l.Sub(l, r)
	case nodeMul:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		l.Mul(l, r)
	case nodeDiv:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		// Division by zero is an error regardless of the dividend, and so
		// is inf/inf.
		if r.Sign() == 0 || l.IsInf() && r.IsInf() {
			return domainErr(r, "/")
		}
		l.Quo(l, r)
	case nodeMod:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		return mod(l, l, r)
	case nodePow:
		l, r, err := n.binary(ctx)
		if err != nil {
			return err
		}
		return pow(l, l, r)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
	return nil
}

// EvalString is a shortcut to parse and evaluate a string expression using
// the default functions.
func EvalString(src string, opts ...Option) (*big.Float, error) {
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	r := ctx.Eval(a)
	return r, ctx.Err()
}
