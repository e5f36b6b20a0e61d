// Package repl implements the interactive read-eval-print loop for flatcalc.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/zephyrtronium/flatcalc"
	"github.com/zephyrtronium/flatcalc/internal/config"
)

// Hint is printed after the banner.
const Hint = "Type 'help' to see what's possible"

// REPL reads expressions line by line and prints their results. It is not
// safe for concurrent use.
type REPL struct {
	in  *bufio.Reader
	out io.Writer
	cfg config.Config
	log *slog.Logger
}

// New creates a REPL reading from in and writing to out. Each REPL logs with
// its own session id.
func New(in io.Reader, out io.Writer, cfg config.Config, log *slog.Logger) *REPL {
	if log == nil {
		log = slog.Default()
	}
	return &REPL{
		in:  bufio.NewReader(in),
		out: out,
		cfg: cfg,
		log: log.With("session", uuid.NewString()),
	}
}

// Run is a shortcut to create a REPL and run it.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config, log *slog.Logger) error {
	return New(in, out, cfg, log).Run(ctx)
}

// Run prints the banner and then evaluates lines until "exit", the end of
// input, or cancellation of ctx, which is checked before each line. Invalid
// expressions are reported and do not stop the loop. The result is nil on
// exit or end of input.
func (r *REPL) Run(ctx context.Context) error {
	if r.cfg.Banner != "" {
		fmt.Fprintln(r.out, r.cfg.Banner)
	}
	fmt.Fprintln(r.out, Hint)
	r.log.Debug("session started")
	defer r.log.Debug("session ended")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, r.cfg.Prompt)
		line, err := r.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		switch line {
		case "exit":
			return nil
		case "help":
			r.help()
		case "":
			// Nothing to do.
		default:
			r.Eval(line)
		}
		if err != nil {
			// Final line without a newline.
			return nil
		}
	}
}

func (r *REPL) help() {
	fmt.Fprintln(r.out, "- To exit type 'exit'")
	fmt.Fprintln(r.out, "- Enter an expression of integers and the operators "+strings.Join(strings.Split(flatcalc.Operators, ""), " ")+", e.g. 2+2*2")
}

// Eval evaluates one line and prints the result, or prints and returns the
// error describing why the line is not a valid expression.
func (r *REPL) Eval(line string) error {
	toks, err := flatcalc.Tokenize(line)
	if err != nil {
		return r.fail(line, err)
	}
	if len(toks) == 0 {
		return r.fail(line, &flatcalc.EmptyExpressionError{})
	}
	if r.cfg.Echo {
		for _, tok := range toks {
			fmt.Fprintln(r.out, tok)
		}
	}
	if err := flatcalc.Validate(toks); err != nil {
		return r.fail(line, err)
	}
	var x float64
	if r.cfg.Echo {
		var steps []flatcalc.Step
		x, steps = flatcalc.EvaluateSteps(toks)
		for _, s := range steps {
			fmt.Fprintf(r.out, "  %g %s %g = %g\n", s.Left, s.Op, s.Right, s.Result)
		}
	} else {
		x = flatcalc.Evaluate(toks)
	}
	r.log.Debug("evaluated", "input", line, "tokens", len(toks), "result", x)
	fmt.Fprintf(r.out, r.cfg.Format+"\n", x)
	return nil
}

func (r *REPL) fail(line string, err error) error {
	r.log.Debug("rejected input", "input", line, "error", err)
	fmt.Fprintln(r.out, "error:", err)
	return err
}
