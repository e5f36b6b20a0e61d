package flatcalc

import (
	"errors"
	"strconv"

	"golang.org/x/exp/slices"
)

// Step is a single reduction of an operator and its two neighbors.
type Step struct {
	// Index is the position of the operator in the sequence being reduced.
	Index int
	// Op is the operator symbol.
	Op string
	// Left, Right, and Result are the operands and the value that replaced
	// them.
	Left, Right, Result float64
}

// Evaluate reduces tokens to a single number. tokens must have passed
// Validate and must not be empty; otherwise Evaluate panics. The slice is not
// modified.
//
// Each step selects the operator with the highest priority, the leftmost one
// on ties, and replaces it and its neighbors with a value holding the result.
// Division by zero follows IEEE-754 rules.
func Evaluate(tokens []Token) float64 {
	return reduce(tokens, nil)
}

// EvaluateSteps is like Evaluate but also returns each reduction in the order
// it was performed.
func EvaluateSteps(tokens []Token) (float64, []Step) {
	var steps []Step
	r := reduce(tokens, func(s Step) { steps = append(steps, s) })
	return r, steps
}

// Eval tokenizes, validates, and evaluates an expression. An empty expression
// results in an *EmptyExpressionError.
func Eval(s string) (float64, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, &EmptyExpressionError{}
	}
	if err := Validate(toks); err != nil {
		return 0, err
	}
	return Evaluate(toks), nil
}

func reduce(tokens []Token, record func(Step)) float64 {
	toks := slices.Clone(tokens)
	for {
		i := nextOperator(toks)
		if i < 0 {
			break
		}
		if i == 0 || i == len(toks)-1 {
			panic("flatcalc: operator " + strconv.Quote(toks[i].Text) + " at " + strconv.Itoa(i) + " lacks operands (unvalidated input?)")
		}
		l, r := num(toks[i-1]), num(toks[i+1])
		x := apply(toks[i].Text, l, r)
		if record != nil {
			record(Step{Index: i, Op: toks[i].Text, Left: l, Right: r, Result: x})
		}
		toks[i-1] = Value(strconv.FormatFloat(x, 'g', -1, 64))
		toks = slices.Delete(toks, i, i+2)
	}
	if len(toks) != 1 {
		panic("flatcalc: " + strconv.Itoa(len(toks)) + " tokens left after reduction (unvalidated input?)")
	}
	return num(toks[0])
}

// nextOperator finds the index of the operator to reduce next, or -1 if there
// are no operators.
func nextOperator(toks []Token) int {
	best := slices.IndexFunc(toks, Token.IsOperator)
	if best < 0 {
		return -1
	}
	for i := best + 1; i < len(toks); i++ {
		// Strictly greater keeps the leftmost of equal priorities.
		if toks[i].IsOperator() && toks[i].Priority > toks[best].Priority {
			best = i
		}
	}
	return best
}

// num parses the number held by a value token.
func num(t Token) float64 {
	if !t.IsValue() {
		panic("flatcalc: expected a value, got " + t.String())
	}
	x, err := strconv.ParseFloat(t.Text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too many digits. ParseFloat gives the appropriately signed infinity.
	default:
		panic("flatcalc: invalid number: " + t.Text + " (" + err.Error() + ")")
	}
	return x
}

func apply(op string, l, r float64) float64 {
	switch op {
	case "*":
		return l * r
	case "/":
		return l / r
	case "+":
		return l + r
	case "-":
		return l - r
	default:
		panic("flatcalc: invalid operator " + strconv.Quote(op))
	}
}
