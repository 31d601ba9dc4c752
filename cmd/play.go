package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive trainer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyQuizFlags(cmd); err != nil {
			return err
		}
		f := cmd.Flags()
		if f.Changed("auto-next") {
			cfg.AutoNext, _ = f.GetBool("auto-next")
		}
		if f.Changed("minutes") {
			cfg.SessionMinutes, _ = f.GetInt("minutes")
		}
		if f.Changed("metrics-addr") {
			cfg.MetricsAddr, _ = f.GetString("metrics-addr")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runApp(cmd)
	},
}

func init() {
	addQuizFlags(playCmd)
	playCmd.Flags().Bool("auto-next", true, "Advance automatically after a correct answer")
	playCmd.Flags().Int("minutes", 60, "Practice timer length in minutes")
	playCmd.Flags().String("metrics-addr", "", `Serve Prometheus metrics on this address, e.g. ":9464"`)
}
