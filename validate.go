package flatcalc

// Validate checks that tokens is a well-formed flat expression: every
// operator has a value immediately on each side, and every value has an
// operator on at least one side. The first violation in token order is
// reported as a *SyntaxError. An empty sequence is valid.
//
// Note that a lone value such as the result of Tokenize("5") is invalid,
// since it has no operator next to it.
func Validate(tokens []Token) error {
	for i, tok := range tokens {
		switch tok.Kind {
		case KindOperator:
			if err := needValue(tokens, i-1, MissingLeftValue); err != nil {
				return err
			}
			if err := needValue(tokens, i+1, MissingRightValue); err != nil {
				return err
			}
		case KindValue:
			if !isOperatorAt(tokens, i-1) && !isOperatorAt(tokens, i+1) {
				return &SyntaxError{Kind: MissingOperator, Index: i}
			}
		default:
			return &SyntaxError{Kind: UnexpectedToken, Index: i}
		}
	}
	return nil
}

// needValue checks that tokens[j] exists and is a value. missing is the kind
// to report when j is out of range.
func needValue(tokens []Token, j int, missing SyntaxErrorKind) error {
	if j < 0 || j >= len(tokens) {
		return &SyntaxError{Kind: missing, Index: j}
	}
	if !tokens[j].IsValue() {
		return &SyntaxError{Kind: UnexpectedToken, Index: j}
	}
	return nil
}

func isOperatorAt(tokens []Token, j int) bool {
	return 0 <= j && j < len(tokens) && tokens[j].IsOperator()
}
