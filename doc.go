// Package flatcalc evaluates flat arithmetic expressions over integers.
//
// An expression is a sequence of decimal integers joined by the operators
// + - * and /, with no brackets, whitespace, or signs, e.g. "2+2*2". Text is
// handled in three stages: Tokenize splits it into Value and Operator tokens,
// Validate checks that every operator sits between two values, and Evaluate
// repeatedly collapses the highest priority operator with its neighbors until
// one value remains. Multiplication and division bind tighter than addition
// and subtraction; operators of equal priority reduce left to right.
//
// Evaluation is done in float64, so "1/2" is 0.5 and division by zero gives
// an infinity or NaN rather than an error.
//
package flatcalc
