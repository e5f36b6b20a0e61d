//go:build go1.18
// +build go1.18

package flatcalc_test

import (
	"testing"

	"github.com/zephyrtronium/flatcalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1+1")
	f.Add("2+2*2")
	f.Add("1/0")
	f.Add("*1")
	f.Fuzz(func(t *testing.T, s string) {
		// Anything that validates must evaluate without panicking.
		flatcalc.Eval(s)
	})
}

func FuzzTokenizeDigits(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1234567890))
	f.Fuzz(func(t *testing.T, n uint64) {
		s := formatDigits(n)
		toks, err := flatcalc.Tokenize(s)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if len(toks) != 1 || toks[0] != flatcalc.Value(s) {
			t.Errorf("%q: want one value token, got %v", s, toks)
		}
	})
}

func formatDigits(n uint64) string {
	var b [20]byte
	i := len(b)
	for {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			return string(b[i:])
		}
	}
}
