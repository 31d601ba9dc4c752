package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/theory"
)

// errIncorrect makes check exit non-zero for a wrong answer.
var errIncorrect = errors.New("answer is incorrect")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check one answer against a fixed key, mode and degree",
	Example: `  solfa check --key F --degree 4 --prompt note --solfege fa --answer-degree 4
  solfa check --key E --mode natural-minor --degree 3 --prompt degree --note G --solfege me
  solfa check --key B --degree 7 --prompt solfege --note Bb --answer-degree 7 --enharmonic`,
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("key", "C", "Key name")
	f.String("mode", "major", "Scale mode")
	f.Int("degree", 1, "Scale degree of the item (1-7)")
	f.String("prompt", "note", "Given field: note, degree or solfege")
	f.String("note", "", "Submitted note")
	f.String("solfege", "", "Submitted solfege syllable")
	f.String("answer-degree", "", "Submitted degree (1-7, ordinal or roman)")
	f.Bool("enharmonic", false, "Accept enharmonically equivalent notes")
	f.Bool("chromatic", true, "Use chromatic solfege for minor modes")
}

func runCheck(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	key, _ := f.GetString("key")
	modeName, _ := f.GetString("mode")
	degree, _ := f.GetInt("degree")
	promptName, _ := f.GetString("prompt")
	enharmonic, _ := f.GetBool("enharmonic")
	chromatic, _ := f.GetBool("chromatic")

	mode, ok := theory.ParseMode(modeName)
	if !ok {
		return fmt.Errorf("unknown mode %q", modeName)
	}
	prompt, ok := quiz.ParsePromptType(promptName)
	if !ok || !prompt.Concrete() {
		return fmt.Errorf("invalid prompt %q: must be note, degree or solfege", promptName)
	}

	item, err := quiz.BuildItem(key, mode, degree, prompt, chromatic)
	if err != nil {
		return err
	}

	var sub quiz.Submission
	sub.Note, _ = f.GetString("note")
	sub.Solfege, _ = f.GetString("solfege")
	sub.Degree, _ = f.GetString("answer-degree")

	r := quiz.Validate(item, sub, quiz.Policy{Enharmonic: enharmonic})
	printResult(cmd.OutOrStdout(), item, r)
	if !r.Correct {
		return errIncorrect
	}
	return nil
}

func printResult(out io.Writer, item *quiz.Item, r quiz.Result) {
	fmt.Fprintln(out, quiz.PromptText(item))
	for _, fld := range item.Answerable() {
		mark := "✓"
		if !r.FieldCorrect(fld) {
			mark = "✗"
		}
		fmt.Fprintf(out, "  %s %s\n", mark, fld)
	}
	if r.Correct {
		fmt.Fprintln(out, "Correct!")
		return
	}
	fmt.Fprintf(out, "Not quite: %s\n", strings.Join(quiz.Mistakes(item, r), ", "))
}
