// Package config loads settings for the flatcalc command.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds settings for the interactive calculator.
type Config struct {
	// Prompt is printed before reading each line.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Echo prints tokens and reduction steps before each result.
	Echo bool `yaml:"echo"`
	// LogLevel is one of debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
	// Banner is printed once at startup.
	Banner string `yaml:"banner"`
}

// Environment variables that override file settings.
const (
	EnvPrompt   = "FLATCALC_PROMPT"
	EnvFormat   = "FLATCALC_FORMAT"
	EnvEcho     = "FLATCALC_ECHO"
	EnvLogLevel = "FLATCALC_LOG_LEVEL"
)

// DefaultEnvPath is the .env file read when ENV_PATH is unset.
const DefaultEnvPath = ".env"

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:   "> ",
		Format:   "%g",
		LogLevel: "warn",
		Banner:   "Welcome to flatcalc!",
	}
}

// Load builds a Config from the defaults, then the YAML file at path if path
// is not empty, then environment variables. Variables from a .env file are
// loaded first without replacing ones already set.
func Load(path string) (*Config, error) {
	loadDotEnv()
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := Decode(f, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv() {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = DefaultEnvPath
	}
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("Skipping .env ...", "path", envPath, "error", err)
	}
}

// Decode reads YAML settings from r over the values already in cfg. An empty
// document leaves cfg unchanged.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrompt); ok {
		c.Prompt = v
	}
	if v, ok := lookup(EnvFormat); ok {
		c.Format = v
	}
	if v, ok := lookup(EnvEcho); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvEcho, err)
		}
		c.Echo = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that the format and log level are usable.
func (c Config) Validate() error {
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("format %q has no verb", c.Format)
	}
	if s := fmt.Sprintf(c.Format, 1.5); strings.Contains(s, "%!") {
		return fmt.Errorf("format %q cannot print a number: %s", c.Format, s)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
