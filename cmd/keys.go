package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/solfa/internal/theory"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the supported keys in circle-of-fifths order",
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, _ := cmd.Flags().GetString("quality")

		var qualities []theory.Quality
		switch strings.ToLower(quality) {
		case "major":
			qualities = []theory.Quality{theory.Major}
		case "minor":
			qualities = []theory.Quality{theory.Minor}
		case "all", "":
			qualities = []theory.Quality{theory.Major, theory.Minor}
		default:
			return fmt.Errorf("invalid quality %q: must be major, minor or all", quality)
		}
		return printKeys(cmd.OutOrStdout(), qualities)
	},
}

func init() {
	keysCmd.Flags().String("quality", "all", "Key quality: major, minor or all")
}

func printKeys(out io.Writer, qualities []theory.Quality) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUALITY\tKEY\tSIGNATURE")
	for _, q := range qualities {
		for _, key := range theory.Keys(q) {
			n, _ := theory.AccidentalCount(key, q)
			fmt.Fprintf(w, "%s\t%s\t%s\n", q, key, describeSignature(n))
		}
	}
	return w.Flush()
}

func describeSignature(n int) string {
	switch {
	case n == 0:
		return "no sharps or flats"
	case n == 1:
		return "1 sharp"
	case n == -1:
		return "1 flat"
	case n > 0:
		return fmt.Sprintf("%d sharps", n)
	default:
		return fmt.Sprintf("%d flats", -n)
	}
}
