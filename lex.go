package flatcalc

import (
	"errors"
	"io"
	"strings"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	toks []Token
}

// Tokenize splits an expression into tokens in reading order. An empty string
// results in no tokens and no error. Any rune other than a decimal digit or
// one of Operators, whitespace included, results in an *UnrecognizedCharError.
func Tokenize(s string) ([]Token, error) {
	return Scan(strings.NewReader(s))
}

// Scan tokenizes all runes from src until EOF. Errors from src other than
// io.EOF are returned as-is.
func Scan(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.flush()
				return l.toks, nil
			}
			return nil, err
		}
		l.rune++
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case strings.ContainsRune(Operators, r):
			l.flush()
			l.toks = append(l.toks, Operator(r))
		default:
			return nil, &UnrecognizedCharError{Char: r, Col: l.rune}
		}
	}
}

// flush emits the pending digits, if any, as a value token.
func (l *lexer) flush() {
	if l.buf.Len() == 0 {
		return
	}
	l.toks = append(l.toks, Value(l.buf.String()))
	l.buf.Reset()
}
