package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/solfa/internal/theory"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Print the notes and solfege of a scale",
	Example: `  solfa scale --key D --mode harmonic-minor
  solfa scale --key Bb --mode natural-minor --chromatic=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		modeName, _ := cmd.Flags().GetString("mode")
		chromatic, _ := cmd.Flags().GetBool("chromatic")

		mode, ok := theory.ParseMode(modeName)
		if !ok {
			return fmt.Errorf("unknown mode %q", modeName)
		}
		return printScale(cmd.OutOrStdout(), key, mode, chromatic)
	},
}

func init() {
	scaleCmd.Flags().String("key", "C", "Key name, e.g. F# or Bb")
	scaleCmd.Flags().String("mode", "major", "Scale mode")
	scaleCmd.Flags().Bool("chromatic", true, "Use chromatic solfege for minor modes")
}

func printScale(out io.Writer, key string, mode theory.Mode, chromatic bool) error {
	sc, err := theory.BuildScale(key, mode)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s: %s\n\n", key, mode.DisplayName(), sc)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEGREE\tNOTE\tSOLFEGE\tPITCH CLASS")
	fmt.Fprintln(w, strings.Repeat("-", 6)+"\t"+strings.Repeat("-", 4)+"\t"+strings.Repeat("-", 7)+"\t"+strings.Repeat("-", 11))
	for degree := 1; degree <= 7; degree++ {
		note, _ := sc.Note(degree)
		syl, err := theory.SolfegeFor(degree, mode, chromatic)
		if err != nil {
			return err
		}
		pc, _ := theory.PitchClass(note)
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", degree, note, syl, pc)
	}
	return w.Flush()
}
