// Package config loads trainer settings from defaults, an optional YAML file
// and SOLFA_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/theory"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives logs from the TUI. Empty discards them.
	LogFile string `koanf:"log_file"`

	// Mode is the scale mode name, e.g. "major" or "harmonic-minor".
	Mode string `koanf:"mode"`

	// Key is a key name valid for Mode's quality, or "random".
	Key string `koanf:"key"`

	// PromptType is "note", "degree", "solfege" or "mixed".
	PromptType string `koanf:"prompt_type"`

	// Enharmonic accepts enharmonically equivalent note spellings.
	Enharmonic bool `koanf:"enharmonic"`

	// ChromaticSolfege uses the per-mode altered syllables (me, le, te).
	ChromaticSolfege bool `koanf:"chromatic_solfege"`

	// AutoNext advances to the next item after a correct answer.
	AutoNext bool `koanf:"auto_next"`

	// AutoNextDelayMS is the pause before auto-advancing.
	AutoNextDelayMS int `koanf:"auto_next_delay_ms"`

	// SessionMinutes is the practice timer length.
	SessionMinutes int `koanf:"session_minutes"`

	// MetricsAddr serves Prometheus metrics when non-empty, e.g. ":9464".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Mode:             theory.ModeMajor.String(),
		Key:              "C",
		PromptType:       quiz.PromptNoteGiven.String(),
		Enharmonic:       false,
		ChromaticSolfege: true,
		AutoNext:         true,
		AutoNextDelayMS:  700,
		SessionMinutes:   int(session.DefaultSessionDuration / time.Minute),
	}
}

// Validate checks that every field resolves to a usable value.
func (c *Config) Validate() error {
	mode, ok := theory.ParseMode(c.Mode)
	if !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Key != quiz.RandomKey && !theory.HasKey(c.Key, mode.Quality()) {
		return fmt.Errorf("%w: key %q is not a %s key", ErrInvalidConfig, c.Key, mode.Quality())
	}
	if _, ok := quiz.ParsePromptType(c.PromptType); !ok {
		return fmt.Errorf("%w: unknown prompt type %q", ErrInvalidConfig, c.PromptType)
	}
	if c.AutoNextDelayMS < 0 {
		return fmt.Errorf("%w: auto_next_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.SessionMinutes <= 0 {
		return fmt.Errorf("%w: session_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}

// QuizOptions converts the configuration into generator options. Call
// Validate first; unparseable values fall back to the defaults.
func (c *Config) QuizOptions() quiz.Options {
	mode, ok := theory.ParseMode(c.Mode)
	if !ok {
		mode = theory.ModeMajor
	}
	prompt, ok := quiz.ParsePromptType(c.PromptType)
	if !ok {
		prompt = quiz.PromptNoteGiven
	}
	return quiz.Options{
		Key:            c.Key,
		Mode:           mode,
		Prompt:         prompt,
		ChromaticAware: c.ChromaticSolfege,
	}
}

// Policy returns the answer equivalence policy.
func (c *Config) Policy() quiz.Policy {
	return quiz.Policy{Enharmonic: c.Enharmonic}
}

// AutoNextDelay returns the auto-advance pause as a duration.
func (c *Config) AutoNextDelay() time.Duration {
	return time.Duration(c.AutoNextDelayMS) * time.Millisecond
}

// SessionDuration returns the practice timer length.
func (c *Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionMinutes) * time.Minute
}
