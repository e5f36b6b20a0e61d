package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/zephyrtronium/flatcalc/internal/config"
	"github.com/zephyrtronium/flatcalc/internal/repl"
)

func main() {
	var (
		cfgname, prompt, verb, level string
		echo                         bool
	)
	flag.StringVar(&cfgname, "config", "", "YAML settings file")
	flag.StringVar(&prompt, "prompt", "", "interactive prompt (default from config)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default from config)")
	flag.StringVar(&level, "log-level", "", "debug, info, warn, or error (default from config)")
	flag.BoolVar(&echo, "echo", false, "print tokens and reduction steps")
	flag.Parse()

	cfg, err := config.Load(cfgname)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(2)
	}
	// Explicit flags win over the file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			cfg.Prompt = prompt
		case "fmt":
			cfg.Format = verb
		case "log-level":
			cfg.LogLevel = level
		case "echo":
			cfg.Echo = echo
		}
	})
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid settings", "error", err)
		os.Exit(2)
	}
	lvl, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)

	if flag.NArg() > 0 {
		// Evaluate arguments instead of reading interactively.
		r := repl.New(os.Stdin, os.Stdout, *cfg, log)
		failed := false
		for _, arg := range flag.Args() {
			if err := r.Eval(arg); err != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	if err := repl.Run(context.Background(), os.Stdin, os.Stdout, *cfg, log); err != nil {
		log.Error("Input loop failed", "error", err)
		os.Exit(1)
	}
}
