package quiz

import (
	"fmt"
	"strings"
)

// Hint returns a partial clue for the item's hidden fields.
func Hint(item *Item) string {
	switch item.Prompt {
	case PromptNoteGiven:
		return fmt.Sprintf("%s in %s %s is %s (degree %d)",
			item.Note, item.Key, item.Mode.DisplayName(), strings.ToUpper(string(item.Solfege)), item.Degree)
	case PromptDegreeGiven:
		return fmt.Sprintf("The note starts with the letter %s", item.Note[:1])
	case PromptSolfegeGiven:
		return fmt.Sprintf("%s = degree %d", item.Solfege, item.Degree)
	default:
		return ""
	}
}

// Reveal returns the full answer text for the item.
func Reveal(item *Item) string {
	return fmt.Sprintf("Note: %s | Solfege: %s | Degree: %d (Key: %s, %s)",
		item.Note, item.Solfege, item.Degree, item.Key, item.Mode.DisplayName())
}

// PromptText describes the question: which field is given and what to answer.
func PromptText(item *Item) string {
	given := item.Given()
	var asked []string
	for _, f := range item.Answerable() {
		asked = append(asked, f.String())
	}
	return fmt.Sprintf("[%s] Key: %s | %s = %s, enter %s",
		item.Mode.DisplayName(), item.Key, given, item.Value(given), strings.Join(asked, " + "))
}
