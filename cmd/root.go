package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/solfa/internal/config"
	"github.com/abhisek/solfa/pkg/logger"
)

// cfg is loaded once per invocation by loadConfig.
var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "solfa",
	Short: "Scale degree and solfege trainer",
	Long: "Solfa drills scale degrees, note names and solfege syllables in major and\n" +
		"minor keys, from the terminal.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides SOLFA_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config file from --config, then SOLFA_CONFIG, and
// applies --log-level. Logs go to stderr until a command redirects them.
func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.LogLevel = lvl
	}
	if err := logger.SetLevelString(c.LogLevel); err != nil {
		return err
	}
	logger.Init(cmd.ErrOrStderr())
	cfg = c
	return nil
}
