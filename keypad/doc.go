// Package keypad turns calculator key presses into expressions.
//
// A Builder consumes one Key at a time and keeps the expression as a sequence
// of logical tokens. The text handed to the evaluator and the text shown to
// the user are both rendered from that sequence, so they never disagree and a
// single DEL always removes one whole token from both. Display text marks
// exponents with <sup> and </sup>.
//
// A Session adds what a calculator window needs around a Builder: the answer
// register, the shift key, and evaluation on =.
package keypad
