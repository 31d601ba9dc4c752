package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/abhisek/solfa/internal/config"
	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/theory"
)

var configEnvVars = []string{
	"SOLFA_CONFIG", "SOLFA_MODE", "SOLFA_KEY", "SOLFA_PROMPT_TYPE",
	"SOLFA_ENHARMONIC", "SOLFA_AUTO_NEXT_DELAY_MS", "SOLFA_SESSION_MINUTES",
}

func clearConfigEnvVars() {
	for _, v := range configEnvVars {
		_ = os.Unsetenv(v)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solfa.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	convey.Convey("Given the config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load("")

			convey.Convey("Then the defaults are used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Mode, convey.ShouldEqual, "major")
				convey.So(cfg.Key, convey.ShouldEqual, "C")
				convey.So(cfg.PromptType, convey.ShouldEqual, "note")
				convey.So(cfg.ChromaticSolfege, convey.ShouldBeTrue)
				convey.So(cfg.Enharmonic, convey.ShouldBeFalse)
				convey.So(cfg.AutoNextDelay(), convey.ShouldEqual, 700*time.Millisecond)
				convey.So(cfg.SessionDuration(), convey.ShouldEqual, time.Hour)
			})
		})

		convey.Convey("When a YAML file is given", func() {
			path := writeConfig(t, "mode: harmonic-minor\nkey: random\nprompt_type: mixed\nenharmonic: true\n")
			cfg, err := config.Load(path)

			convey.Convey("Then it overrides the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Mode, convey.ShouldEqual, "harmonic-minor")
				convey.So(cfg.Key, convey.ShouldEqual, quiz.RandomKey)
				convey.So(cfg.Enharmonic, convey.ShouldBeTrue)

				opts := cfg.QuizOptions()
				convey.So(opts.Mode, convey.ShouldEqual, theory.ModeHarmonicMinor)
				convey.So(opts.Prompt, convey.ShouldEqual, quiz.PromptMixed)
				convey.So(cfg.Policy().Enharmonic, convey.ShouldBeTrue)
			})

			convey.Convey("And env vars take precedence over the file", func() {
				_ = os.Setenv("SOLFA_KEY", "D")
				_ = os.Setenv("SOLFA_AUTO_NEXT_DELAY_MS", "1500")
				cfg, err := config.Load(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Key, convey.ShouldEqual, "D")
				convey.So(cfg.AutoNextDelayMS, convey.ShouldEqual, 1500)
			})
		})

		convey.Convey("When SOLFA_CONFIG points at a file", func() {
			path := writeConfig(t, "mode: melodic-minor\nkey: C\n")
			_ = os.Setenv("SOLFA_CONFIG", path)
			cfg, err := config.Load("")

			convey.Convey("Then the file is read", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Mode, convey.ShouldEqual, "melodic-minor")
			})
		})

		convey.Convey("When the key does not fit the mode's quality", func() {
			_ = os.Setenv("SOLFA_MODE", "natural-minor")
			_ = os.Setenv("SOLFA_KEY", "Db")
			_, err := config.Load("")

			convey.Convey("Then loading fails as invalid config", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file is missing", func() {
			_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

			convey.Convey("Then loading fails as a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()
		convey.So(cfg.Validate(), convey.ShouldBeNil)

		convey.Convey("An unknown prompt type is rejected", func() {
			cfg.PromptType = "chord"
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("A non-positive session length is rejected", func() {
			cfg.SessionMinutes = 0
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("An unknown mode is rejected", func() {
			cfg.Mode = "lydian"
			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
