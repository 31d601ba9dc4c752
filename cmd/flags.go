package cmd

import (
	"github.com/spf13/cobra"
)

// addQuizFlags registers the quiz selection flags shared by play and drill.
func addQuizFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "Scale mode: major, natural-minor, harmonic-minor, melodic-minor")
	cmd.Flags().String("key", "", `Key name, e.g. "F#" or "Bb", or "random"`)
	cmd.Flags().String("prompt", "", "Prompt type: note, degree, solfege or mixed")
	cmd.Flags().Bool("enharmonic", false, "Accept enharmonically equivalent notes")
	cmd.Flags().Bool("chromatic", true, "Use chromatic solfege for minor modes (me, le, te)")
}

// applyQuizFlags copies explicitly set quiz flags over cfg and revalidates.
func applyQuizFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	if f.Changed("mode") {
		cfg.Mode, _ = f.GetString("mode")
	}
	if f.Changed("key") {
		cfg.Key, _ = f.GetString("key")
	}
	if f.Changed("prompt") {
		cfg.PromptType, _ = f.GetString("prompt")
	}
	if f.Changed("enharmonic") {
		cfg.Enharmonic, _ = f.GetBool("enharmonic")
	}
	if f.Changed("chromatic") {
		cfg.ChromaticSolfege, _ = f.GetBool("chromatic")
	}
	return cfg.Validate()
}
