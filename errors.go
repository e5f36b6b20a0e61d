package flatcalc

import "strconv"

// UnrecognizedCharError indicates a rune that is neither a decimal digit nor
// an operator. It implements InputError.
type UnrecognizedCharError struct {
	// Char is the offending rune.
	Char rune
	// Col is the number of runes scanned up to and including Char.
	Col int
}

func (err *UnrecognizedCharError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(err.Char))
}

func (err *UnrecognizedCharError) Pos() int {
	return err.Col
}

// SyntaxErrorKind is the rule a token sequence broke.
type SyntaxErrorKind uint8

const (
	// MissingLeftValue is an operator with nothing before it.
	MissingLeftValue SyntaxErrorKind = iota + 1
	// MissingRightValue is an operator with nothing after it.
	MissingRightValue
	// UnexpectedToken is a non-value where an operator needed a value.
	UnexpectedToken
	// MissingOperator is a value with no operator on either side.
	MissingOperator
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case MissingLeftValue:
		return "MissingLeftValue"
	case MissingRightValue:
		return "MissingRightValue"
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingOperator:
		return "MissingOperator"
	default:
		return "SyntaxErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SyntaxError is a structural problem in a token sequence. It implements
// InputError.
type SyntaxError struct {
	Kind SyntaxErrorKind
	// Index is the token index the error refers to. For MissingLeftValue and
	// MissingRightValue it is the absent neighbor's index, so it may be -1 or
	// the length of the sequence.
	Index int
}

func (err *SyntaxError) Error() string {
	var msg string
	switch err.Kind {
	case MissingLeftValue:
		msg = "operator is missing a value on its left"
	case MissingRightValue:
		msg = "operator is missing a value on its right"
	case UnexpectedToken:
		msg = "expected a value"
	case MissingOperator:
		msg = "value is not next to any operator"
	default:
		msg = "syntax error " + err.Kind.String()
	}
	return errpos(err.Index, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Index
}

// EmptyExpressionError indicates an input with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For errors from tokenizing, this
	// is a 1-based rune column. For syntax errors, it is a 0-based token index.
	Pos() int
}

var (
	_ InputError = (*UnrecognizedCharError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
