package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice in a plain line-by-line quiz",
	Long: `Answer items one field per line without the full-screen UI.

Type ? for a hint or ! to reveal the answer. An empty line skips the item.`,
	RunE: runDrill,
}

func init() {
	addQuizFlags(drillCmd)
	drillCmd.Flags().Int("count", 10, "Number of items")
	drillCmd.Flags().Uint64("seed", 0, "Random seed for a repeatable drill (0 = random)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	if err := applyQuizFlags(cmd); err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}
	seed, _ := cmd.Flags().GetUint64("seed")

	gen := quiz.NewGenerator(nil)
	if seed != 0 {
		gen = quiz.NewSeededGenerator(seed)
	}

	d := &drill{
		in:     bufio.NewScanner(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
		gen:    gen,
		opts:   cfg.QuizOptions(),
		policy: cfg.Policy(),
		state:  session.NewState(""),
	}
	d.state.Observer = session.NewLogObserver()
	return d.run(count)
}

// errInputClosed ends a drill when stdin runs out.
var errInputClosed = errors.New("input closed")

// drill runs a session over line-oriented input.
type drill struct {
	in     *bufio.Scanner
	out    io.Writer
	gen    *quiz.Generator
	opts   quiz.Options
	policy quiz.Policy
	state  *session.State
}

func (d *drill) run(count int) error {
	for i := 1; i <= count; i++ {
		item, err := d.gen.Next(d.opts)
		if err != nil {
			return err
		}
		d.state.Present(item)

		fmt.Fprintf(d.out, "── Item %d/%d ──\n", i, count)
		fmt.Fprintln(d.out, quiz.PromptText(item))

		if err := d.answer(); err != nil {
			if errors.Is(err, errInputClosed) {
				fmt.Fprintln(d.out, "\n(input closed)")
				break
			}
			return err
		}
		fmt.Fprintln(d.out)
	}

	d.printSummary(session.BuildSummary(d.state, time.Now()))
	return nil
}

// answer reads fields until the item is correct, revealed or skipped.
func (d *drill) answer() error {
	item := d.state.Item
	for {
		var sub quiz.Submission
		for _, f := range item.Answerable() {
			text, done, err := d.readField(f)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			sub = sub.Set(f, text)
		}

		r, err := d.state.Check(sub, d.policy)
		if err != nil {
			return err
		}
		if r.Correct {
			fmt.Fprintln(d.out, "\033[32m✓ Correct!\033[0m")
			return nil
		}
		fmt.Fprintf(d.out, "\033[31m✗ Not quite:\033[0m %s\n", strings.Join(quiz.Mistakes(item, r), ", "))
		d.state.Retry()
	}
}

// readField prompts for f. done is set when the item ended (reveal/skip).
func (d *drill) readField(f quiz.Field) (text string, done bool, err error) {
	for {
		fmt.Fprintf(d.out, "  %s: ", f)
		if !d.in.Scan() {
			return "", false, errInputClosed
		}
		text = strings.TrimSpace(d.in.Text())
		switch text {
		case "?":
			fmt.Fprintf(d.out, "  Hint: %s\n", quiz.Hint(d.state.Item))
			continue
		case "!", "":
			if text == "" {
				fmt.Fprint(d.out, "(skipped) ")
			}
			d.state.Reveal()
			fmt.Fprintln(d.out, quiz.Reveal(d.state.Item))
			return "", true, nil
		}
		return text, false, nil
	}
}

func (d *drill) printSummary(sum *session.Summary) {
	fmt.Fprintf(d.out, "── Summary: %d/%d correct (%.0f%%), best streak %d, revealed %d ──\n",
		sum.Correct, sum.Attempts, sum.Accuracy, sum.BestStreak, sum.Reveals)
}
