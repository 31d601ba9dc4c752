package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/solfa/internal/app"
	"github.com/abhisek/solfa/internal/metrics"
	"github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/pkg/logger"
)

// runApp wires logging and metrics around the TUI. The TUI owns the
// terminal, so logs go to log_file or nowhere.
func runApp(cmd *cobra.Command) error {
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.Init(logOut)
	log := logger.Named("app")

	observers := session.Observers{session.NewLogObserver()}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder()
		observers = append(observers, rec)
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, rec); err != nil {
				log.Error(ctx, "metrics server stopped", logger.Error(err))
			}
		}()
		log.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
	}

	log.Info(ctx, "starting trainer",
		logger.String("mode", cfg.Mode),
		logger.String("key", cfg.Key),
		logger.String("prompt", cfg.PromptType),
	)
	return app.Run(app.Options{Config: cfg, Observer: observers})
}
