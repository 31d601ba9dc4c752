package quiz

import (
	"fmt"

	"github.com/abhisek/solfa/internal/normalize"
	"github.com/abhisek/solfa/internal/theory"
)

// Submission holds the learner's raw text per field. Text for a given field
// is ignored.
type Submission struct {
	Note    string
	Solfege string
	Degree  string
}

// Get returns the raw text submitted for f.
func (s Submission) Get(f Field) string {
	switch f {
	case FieldNote:
		return s.Note
	case FieldSolfege:
		return s.Solfege
	case FieldDegree:
		return s.Degree
	default:
		return ""
	}
}

// Set returns a copy of s with f replaced.
func (s Submission) Set(f Field, v string) Submission {
	switch f {
	case FieldNote:
		s.Note = v
	case FieldSolfege:
		s.Solfege = v
	case FieldDegree:
		s.Degree = v
	}
	return s
}

// Policy holds the equivalence rules applied while checking.
type Policy struct {
	// Enharmonic accepts a note with the same pitch class as the expected
	// spelling. It never relaxes solfège comparison.
	Enharmonic bool
}

// Result reports per-field and overall correctness. Given fields are
// always reported correct.
type Result struct {
	Correct bool
	Note    bool
	Solfege bool
	Degree  bool
}

// FieldCorrect returns the correctness of f.
func (r Result) FieldCorrect(f Field) bool {
	switch f {
	case FieldNote:
		return r.Note
	case FieldSolfege:
		return r.Solfege
	case FieldDegree:
		return r.Degree
	default:
		return false
	}
}

// Validate checks sub against item. Malformed text is simply incorrect.
func Validate(item *Item, sub Submission, p Policy) Result {
	r := Result{Note: true, Solfege: true, Degree: true}
	if !item.IsGiven(FieldNote) {
		r.Note = checkNote(sub.Note, item.Note, p.Enharmonic)
	}
	if !item.IsGiven(FieldSolfege) {
		syl, ok := normalize.Solfege(sub.Solfege)
		r.Solfege = ok && syl == item.Solfege
	}
	if !item.IsGiven(FieldDegree) {
		d, ok := normalize.Degree(sub.Degree)
		r.Degree = ok && d == item.Degree
	}
	r.Correct = r.Note && r.Solfege && r.Degree
	return r
}

func checkNote(raw, want string, enharmonic bool) bool {
	got, ok := normalize.Note(raw)
	if !ok {
		return false
	}
	if got == want {
		return true
	}
	return enharmonic && theory.Enharmonic(got, want)
}

// Mistakes lists the expected value for each incorrect field, e.g.
// "note should be Bb".
func Mistakes(item *Item, r Result) []string {
	var out []string
	for _, f := range item.Answerable() {
		if !r.FieldCorrect(f) {
			out = append(out, fmt.Sprintf("%s should be %s", f, item.Value(f)))
		}
	}
	return out
}
