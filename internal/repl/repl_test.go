package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/flatcalc"
	"github.com/zephyrtronium/flatcalc/internal/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	return config.Config{Prompt: "> ", Format: "%g", Banner: "hi"}
}

func TestRun(t *testing.T) {
	t.Run("session", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("1+1\n2+2*2\n1/2\nexit\n3*3\n")
		require.NoError(t, Run(context.Background(), in, &out, testConfig(), discard()))
		want := "hi\n" + Hint + "\n> 2\n> 6\n> 0.5\n> "
		assert.Equal(t, want, out.String())
	})

	t.Run("errors continue", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("B\n5\n1+\n*1\n1**1\n4-1\n")
		require.NoError(t, Run(context.Background(), in, &out, testConfig(), discard()))
		s := out.String()
		assert.Contains(t, s, "error: 1: unrecognized character 'B'\n")
		assert.Contains(t, s, "error: 0: value is not next to any operator\n")
		assert.Contains(t, s, "error: 2: operator is missing a value on its right\n")
		assert.Contains(t, s, "error: -1: operator is missing a value on its left\n")
		assert.Contains(t, s, "error: 2: expected a value\n")
		assert.True(t, strings.HasSuffix(s, "> 3\n> \n"), "output: %q", s)
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("help\nexit\n")
		require.NoError(t, Run(context.Background(), in, &out, testConfig(), discard()))
		s := out.String()
		assert.Contains(t, s, "- To exit type 'exit'\n")
		assert.Contains(t, s, "+ - * /")
		assert.NotContains(t, s, "error")
	})

	t.Run("empty lines and crlf", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("\n\r\n7*6\r\nexit\r\n")
		require.NoError(t, Run(context.Background(), in, &out, testConfig(), discard()))
		assert.Equal(t, "hi\n"+Hint+"\n> > > 42\n> ", out.String())
	})

	t.Run("no trailing newline", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("8/4")
		require.NoError(t, Run(context.Background(), in, &out, testConfig(), discard()))
		assert.True(t, strings.HasSuffix(out.String(), "> 2\n"), "output: %q", out.String())
	})

	t.Run("no banner", func(t *testing.T) {
		var out bytes.Buffer
		cfg := testConfig()
		cfg.Banner = ""
		require.NoError(t, Run(context.Background(), strings.NewReader(""), &out, cfg, discard()))
		assert.Equal(t, Hint+"\n> \n", out.String())
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		err := Run(ctx, strings.NewReader("1+1\n"), &out, testConfig(), discard())
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotContains(t, out.String(), "2")
	})
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunReadError(t *testing.T) {
	bad := errors.New("broken pipe")
	err := Run(context.Background(), errReader{bad}, io.Discard, testConfig(), discard())
	require.Error(t, err)
	assert.ErrorIs(t, err, bad)
}

func TestEval(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		var out bytes.Buffer
		cfg := testConfig()
		cfg.Format = "%.3f"
		r := New(strings.NewReader(""), &out, cfg, discard())
		require.NoError(t, r.Eval("1/3"))
		assert.Equal(t, "0.333\n", out.String())
	})

	t.Run("echo", func(t *testing.T) {
		var out bytes.Buffer
		cfg := testConfig()
		cfg.Echo = true
		r := New(strings.NewReader(""), &out, cfg, discard())
		require.NoError(t, r.Eval("2+2*2"))
		want := "Value: 2\nOperator: + Score: 0\nValue: 2\nOperator: * Score: 1\nValue: 2\n" +
			"  2 * 2 = 4\n  2 + 4 = 6\n6\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("empty", func(t *testing.T) {
		var out bytes.Buffer
		r := New(strings.NewReader(""), &out, testConfig(), discard())
		err := r.Eval("")
		var ee *flatcalc.EmptyExpressionError
		assert.ErrorAs(t, err, &ee)
		assert.Equal(t, "error: no expression\n", out.String())
	})

	t.Run("syntax error", func(t *testing.T) {
		var out bytes.Buffer
		r := New(strings.NewReader(""), &out, testConfig(), discard())
		err := r.Eval("11")
		var se *flatcalc.SyntaxError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, flatcalc.MissingOperator, se.Kind)
		assert.Equal(t, 0, se.Index)
	})
}

func TestSessionLogging(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	require.NoError(t, Run(context.Background(), strings.NewReader("1+1\nx\n"), io.Discard, testConfig(), log))
	s := logs.String()
	assert.Contains(t, s, "session=")
	assert.Contains(t, s, "msg=evaluated")
	assert.Contains(t, s, "msg=\"rejected input\"")
}
