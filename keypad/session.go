package keypad

import "github.com/zephyrtronium/calc"

// Evaluator evaluates an expression to display text. Failures are reported
// as text, conventionally calc.ErrorText.
type Evaluator interface {
	Evaluate(expr string) string
}

// errEvaluator is an Evaluator that can also report why evaluation failed.
// *calc.Evaluator is one.
type errEvaluator interface {
	EvaluateErr(expr string) (string, error)
}

// Session is the state of one calculator: the expression being built, the
// answer register, and the shift key. A Session is not safe for concurrent
// use; each window or shell owns its own.
type Session struct {
	b     Builder
	ev    Evaluator
	shift bool
	// shown is the text the shell should currently display.
	shown string
	err   error
}

// SessionOption is an option for NewSession.
type SessionOption func(*Session)

// WithEvaluator sets the evaluator the session uses on Equals. The default
// is a calc.Evaluator with default options.
func WithEvaluator(ev Evaluator) SessionOption {
	return func(s *Session) {
		s.ev = ev
	}
}

// WithAnswer starts the session with text in its answer register.
func WithAnswer(answer string) SessionOption {
	return func(s *Session) {
		s.b.SetAnswer(answer)
	}
}

// NewSession creates a session with an empty expression.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.ev == nil {
		s.ev = calc.NewEvaluator()
	}
	return s
}

// Submit applies one key press and returns the text to display. Shift
// toggles the shift state, remappable keys are replaced by their shifted
// meanings while it is active, and Equals evaluates the expression, stores
// the result as the answer, and starts a new expression. Submit panics if k
// is not a key.
func (s *Session) Submit(k Key) string {
	mustValid(k)
	switch k = Remap(k, s.shift); k {
	case Shift:
		s.ToggleShift()
	case Equals:
		s.shown = s.evaluate(s.b.Expression())
		s.b.SetAnswer(s.shown)
		s.b.Reset()
	default:
		s.shown = s.b.Submit(k)
	}
	return s.shown
}

// SubmitAll submits each key in order and returns the final display text.
func (s *Session) SubmitAll(keys ...Key) string {
	for _, k := range keys {
		s.Submit(k)
	}
	return s.shown
}

func (s *Session) evaluate(expr string) string {
	if ev, ok := s.ev.(errEvaluator); ok {
		var r string
		r, s.err = ev.EvaluateErr(expr)
		return r
	}
	s.err = nil
	return s.ev.Evaluate(expr)
}

// ToggleShift flips the shift state. Shells repaint the Remappable keys
// afterward using Label.
func (s *Session) ToggleShift() {
	s.shift = !s.shift
}

// Shifted reports whether shift is active.
func (s *Session) Shifted() bool {
	return s.shift
}

// Label returns the caption for the button of base in the current shift
// state.
func (s *Session) Label(base Key) string {
	return Label(base, s.shift)
}

// Display returns the text last returned by Submit: the expression being
// built, or the result of the last evaluation until another key arrives.
func (s *Session) Display() string {
	return s.shown
}

// Expression returns the expression the evaluator will receive.
func (s *Session) Expression() string {
	return s.b.Expression()
}

// Answer returns the answer register.
func (s *Session) Answer() string {
	return s.b.Answer()
}

// OpenPowerGroups returns the number of open power groups in the expression.
func (s *Session) OpenPowerGroups() int {
	return s.b.OpenPowerGroups()
}

// PendingImplicitClose reports whether an open group owes the evaluator a
// hidden close bracket.
func (s *Session) PendingImplicitClose() bool {
	return s.b.PendingImplicitClose()
}

// Err returns the reason the last evaluation failed, if the evaluator
// reports reasons.
func (s *Session) Err() error {
	return s.err
}
