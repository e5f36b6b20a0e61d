package flatcalc

import "strconv"

// Kind is the variant of a token.
type Kind uint8

const (
	KindNone Kind = iota
	// KindValue is a numeric literal.
	KindValue
	// KindOperator is one of the runes in Operators.
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindOperator:
		return "Operator"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// Token is a single value or operator of an expression.
type Token struct {
	Kind Kind
	// Text is the literal for a value or the symbol for an operator. Values
	// produced by Tokenize are non-empty runs of decimal digits; values
	// produced during evaluation hold formatted floats.
	Text string
	// Priority orders operator reduction. Higher reduces first.
	Priority uint8
}

// Value creates a value token.
func Value(text string) Token {
	return Token{Kind: KindValue, Text: text}
}

// Operator creates an operator token with the priority of sym. Panics if sym
// is not one of Operators.
func Operator(sym rune) Token {
	return Token{Kind: KindOperator, Text: string(sym), Priority: priority(sym)}
}

func priority(sym rune) uint8 {
	switch sym {
	case '*', '/':
		return 1
	case '+', '-':
		return 0
	default:
		panic("flatcalc: invalid operator " + strconv.QuoteRune(sym))
	}
}

// IsValue reports whether t is a value token.
func (t Token) IsValue() bool {
	return t.Kind == KindValue
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t.Kind == KindOperator
}

func (t Token) String() string {
	switch t.Kind {
	case KindValue:
		return "Value: " + t.Text
	case KindOperator:
		return "Operator: " + t.Text + " Score: " + strconv.Itoa(int(t.Priority))
	default:
		return t.Kind.String() + ": " + t.Text
	}
}
