// Package calc evaluates the expressions built by a keypad calculator.
//
// The grammar is closed. Numbers, the operators + - * / % ** (and the
// aliases ^ × ÷), brackets, the constants e and π, and a fixed table of
// one-argument functions are all that an expression may contain. A name
// outside the table is an error rather than a lookup, so nothing in the input
// can reach anything but arithmetic. Function names may carry a "math."
// prefix, so "math.sqrt(2)" and "sqrt 2" are the same expression.
//
// As in the notation the keypad produces, "2π" and "3(4)" are implicit
// multiplications, and "-2**2" is "-(2**2)".
//
// Evaluation is done with math/big at a configurable precision, and results
// are formatted to a fixed number of significant digits so that repeated
// evaluation is deterministic.
package calc
