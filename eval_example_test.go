package flatcalc_test

import (
	"fmt"

	"github.com/zephyrtronium/flatcalc"
)

func ExampleEvaluate() {
	toks, err := flatcalc.Tokenize("2+2*2")
	if err != nil {
		panic(err)
	}
	if err := flatcalc.Validate(toks); err != nil {
		panic(err)
	}
	for _, tok := range toks {
		fmt.Println(tok)
	}
	fmt.Println(flatcalc.Evaluate(toks))

	// Output:
	// Value: 2
	// Operator: + Score: 0
	// Value: 2
	// Operator: * Score: 1
	// Value: 2
	// 6
}

func ExampleEval() {
	fmt.Println(flatcalc.Eval("1/2"))
	fmt.Println(flatcalc.Eval("5"))
	fmt.Println(flatcalc.Eval("B"))

	// Output:
	// 0.5 <nil>
	// 0 0: value is not next to any operator
	// 0 1: unrecognized character 'B'
}
