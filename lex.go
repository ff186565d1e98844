package calc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number, possibly with an exponent.
	tokenNum
	// tokenIdent is a function or constant name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenIdent: "Ident",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are considered to be operators. A
// doubled * is lexed as the single operator **.
const Operators = "+-*/%^×÷"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The parser checks that a bracket in byte position k in OpenBrackets is
// matched with the bracket in byte position k in ClosedBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var (
	operstrs      = byteidcs(Operators)
	openbrackets  = byteidcs(OpenBrackets)
	closebrackets = byteidcs(CloseBrackets)
)

type lexer struct {
	src string
	// off is the byte offset of the next rune in src.
	off int
	// col is the number of runes scanned so far.
	col int
	p   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("calc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// peek returns the rune k runes ahead of the next one without consuming
// anything. The result is utf8.RuneError past the end of the input.
func (l *lexer) peek(k int) rune {
	off := l.off
	for {
		if off >= len(l.src) {
			return utf8.RuneError
		}
		r, sz := utf8.DecodeRuneInString(l.src[off:])
		if k == 0 {
			return r
		}
		off += sz
		k--
	}
}

// advance consumes one rune.
func (l *lexer) advance() rune {
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.col++
	return r
}

// next scans the next token from the input. The first time the end of the
// input is reached, the result is an EOF token. Subsequent calls without a
// pushed token keep returning EOF tokens.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for l.off < len(l.src) && unicode.IsSpace(l.peek(0)) {
		l.advance()
	}
	tok := lexToken{pos: l.col + 1}
	if l.off >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	start := l.off
	r := l.peek(0)
	switch {
	case '0' <= r && r <= '9', r == '.':
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.text = l.src[start:l.off]
		tok.kind = tokenNum
		return tok, nil
	case r == '_', unicode.IsLetter(r):
		l.scanIdent()
		tok.text = l.src[start:l.off]
		tok.kind = tokenIdent
		return tok, nil
	case r == '*' && l.peek(1) == '*':
		l.advance()
		l.advance()
		tok.text = "**"
		tok.kind = tokenOp
		return tok, nil
	}
	l.advance()
	if k := strings.IndexRune(Operators, r); k >= 0 {
		tok.text = operstrs[k]
		tok.kind = tokenOp
		return tok, nil
	}
	if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
		tok.text = openbrackets[k]
		tok.kind = tokenOpen
		return tok, nil
	}
	if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
		tok.text = closebrackets[k]
		tok.kind = tokenClose
		return tok, nil
	}
	return tok, &LexError{Text: l.src[start:l.off], Col: l.col}
}

// scanNum consumes a number. A number ends at the first rune that cannot
// continue it, so "2π" is the number 2 followed by the name π. An e or E
// starts an exponent only when digits follow it, optionally after a sign;
// otherwise it is left for the name e.
func (l *lexer) scanNum() error {
	start := l.off
	var dig, dot bool
	for l.off < len(l.src) {
		r := l.peek(0)
		switch {
		case '0' <= r && r <= '9':
			dig = true
			l.advance()
			continue
		case r == '.':
			if dot {
				l.advance()
				return &LexError{Text: l.src[start:l.off], Kind: "number", Col: l.col}
			}
			dot = true
			l.advance()
			continue
		case (r == 'e' || r == 'E') && dig:
			k := 1
			if s := l.peek(1); s == '+' || s == '-' {
				k = 2
			}
			if d := l.peek(k); '0' <= d && d <= '9' {
				for ; k > 0; k-- {
					l.advance()
				}
				for l.off < len(l.src) {
					if d := l.peek(0); d < '0' || d > '9' {
						break
					}
					l.advance()
				}
			}
		}
		break
	}
	if !dig {
		return &LexError{Text: l.src[start:l.off], Kind: "number", Col: l.col}
	}
	return nil
}

func (l *lexer) scanIdent() {
	for l.off < len(l.src) {
		switch r := l.peek(0); {
		case r == '_', r == '.', unicode.IsLetter(r), unicode.IsDigit(r):
			l.advance()
		default:
			return
		}
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
