package quiz

import (
	"strings"
	"testing"

	"github.com/abhisek/solfa/internal/theory"
)

func TestHint(t *testing.T) {
	tests := []struct {
		prompt PromptType
		want   string
	}{
		{PromptNoteGiven, "SOL (degree 5)"},
		{PromptDegreeGiven, "letter G"},
		{PromptSolfegeGiven, "sol = degree 5"},
	}
	for _, tc := range tests {
		it, err := BuildItem("C", theory.ModeMajor, 5, tc.prompt, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h := Hint(it); !strings.Contains(h, tc.want) {
			t.Errorf("Hint(%s) = %q, want it to contain %q", tc.prompt, h, tc.want)
		}
	}
}

func TestReveal(t *testing.T) {
	it, _ := BuildItem("Bb", theory.ModeMajor, 4, PromptNoteGiven, false)
	got := Reveal(it)
	for _, want := range []string{"Note: Eb", "Solfege: fa", "Degree: 4", "Key: Bb"} {
		if !strings.Contains(got, want) {
			t.Errorf("Reveal = %q, missing %q", got, want)
		}
	}
}

func TestPromptText(t *testing.T) {
	it, _ := BuildItem("D", theory.ModeMajor, 3, PromptDegreeGiven, false)
	got := PromptText(it)
	if !strings.Contains(got, "degree = 3") || !strings.Contains(got, "note + solfege") {
		t.Errorf("PromptText = %q", got)
	}
}
