package quiz

import (
	"strconv"
	"strings"

	"github.com/abhisek/solfa/internal/theory"
)

// PromptType selects which field of an item is shown to the learner.
type PromptType int

const (
	// PromptMixed is a policy, not a concrete prompt: each item picks one of
	// the three concrete types uniformly.
	PromptMixed PromptType = iota

	// PromptNoteGiven shows the note; the learner answers solfège and degree.
	PromptNoteGiven

	// PromptDegreeGiven shows the degree; the learner answers note and solfège.
	PromptDegreeGiven

	// PromptSolfegeGiven shows the syllable; the learner answers note and degree.
	PromptSolfegeGiven
)

var concretePrompts = []PromptType{PromptNoteGiven, PromptDegreeGiven, PromptSolfegeGiven}

var promptNames = map[PromptType]string{
	PromptMixed:        "mixed",
	PromptNoteGiven:    "note",
	PromptDegreeGiven:  "degree",
	PromptSolfegeGiven: "solfege",
}

// AllPromptTypes returns the prompt policies in display order, mixed last.
func AllPromptTypes() []PromptType {
	return []PromptType{PromptNoteGiven, PromptDegreeGiven, PromptSolfegeGiven, PromptMixed}
}

func (p PromptType) String() string {
	if name, ok := promptNames[p]; ok {
		return name
	}
	return "unknown"
}

// DisplayName returns a human-readable label for the prompt policy.
func (p PromptType) DisplayName() string {
	switch p {
	case PromptNoteGiven:
		return "Note -> Solfege + Degree"
	case PromptDegreeGiven:
		return "Degree -> Note + Solfege"
	case PromptSolfegeGiven:
		return "Solfege -> Note + Degree"
	case PromptMixed:
		return "Mixed"
	default:
		return p.String()
	}
}

// Concrete reports whether p names a single prompt type rather than a policy.
func (p PromptType) Concrete() bool {
	return p == PromptNoteGiven || p == PromptDegreeGiven || p == PromptSolfegeGiven
}

// ParsePromptType parses "note", "degree", "solfege" or "mixed".
func ParsePromptType(s string) (PromptType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range promptNames {
		if name == s {
			return p, true
		}
	}
	return 0, false
}

// Field identifies one of the three answerable attributes of an item.
type Field int

const (
	FieldNote Field = iota
	FieldSolfege
	FieldDegree
)

// AllFields returns the fields in display order.
func AllFields() []Field {
	return []Field{FieldNote, FieldSolfege, FieldDegree}
}

func (f Field) String() string {
	switch f {
	case FieldNote:
		return "note"
	case FieldSolfege:
		return "solfege"
	case FieldDegree:
		return "degree"
	default:
		return "unknown"
	}
}

// RandomKey is the key selection that picks a key uniformly from the table
// of the mode's quality.
const RandomKey = "random"

// Item is one fully resolved question. Items are never mutated after
// generation.
type Item struct {
	// Key is the tonic name, e.g. "F#" or "Bb".
	Key string

	// Mode is the scale form the item was built from.
	Mode theory.Mode

	// Scale is the spelled scale of Key in Mode.
	Scale theory.Scale

	// Degree is the 1-based scale degree asked about.
	Degree int

	// Note is Scale[Degree-1].
	Note string

	// Solfege is the syllable for Degree under the item's chromatic setting.
	Solfege theory.Syllable

	// Prompt is always a concrete prompt type.
	Prompt PromptType

	// ChromaticAware records whether Solfege came from the per-mode tables.
	ChromaticAware bool
}

// Given returns the single field shown to the learner.
func (it *Item) Given() Field {
	switch it.Prompt {
	case PromptDegreeGiven:
		return FieldDegree
	case PromptSolfegeGiven:
		return FieldSolfege
	default:
		return FieldNote
	}
}

// IsGiven reports whether f is shown rather than asked.
func (it *Item) IsGiven(f Field) bool {
	return it.Given() == f
}

// Answerable returns the two fields the learner must fill in.
func (it *Item) Answerable() []Field {
	out := make([]Field, 0, 2)
	for _, f := range AllFields() {
		if !it.IsGiven(f) {
			out = append(out, f)
		}
	}
	return out
}

// Value returns the truth value of f as display text.
func (it *Item) Value(f Field) string {
	switch f {
	case FieldNote:
		return it.Note
	case FieldSolfege:
		return string(it.Solfege)
	case FieldDegree:
		return strconv.Itoa(it.Degree)
	default:
		return ""
	}
}
