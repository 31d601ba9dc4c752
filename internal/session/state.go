package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/solfa/internal/quiz"
)

var (
	// ErrNoItem is returned when an action needs a current item and there is none.
	ErrNoItem = errors.New("no current item")

	// ErrInputFrozen is returned when checking an item that was already
	// answered correctly or revealed.
	ErrInputFrozen = errors.New("item no longer accepts input")
)

// Phase is the check state of the current item.
type Phase int

const (
	PhasePresented        Phase = iota // Awaiting answers
	PhaseCheckedIncorrect              // Last check failed; retry allowed
	PhaseCheckedCorrect                // Terminal for this item
	PhaseRevealed                      // Answer disclosed, input frozen
)

func (p Phase) String() string {
	switch p {
	case PhasePresented:
		return "presented"
	case PhaseCheckedIncorrect:
		return "checked-incorrect"
	case PhaseCheckedCorrect:
		return "checked-correct"
	case PhaseRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// State is the caller-owned state of one practice session: the current item,
// its check phase, the learner's input and the session statistics.
type State struct {
	// ID identifies the session in logs and summaries.
	ID string

	// Item is the current question (nil before the first Present).
	Item *quiz.Item

	// Phase is the check state of Item.
	Phase Phase

	// Input is the learner's latest submission for Item.
	Input quiz.Submission

	// LastResult is the result of the latest check of Item.
	LastResult *quiz.Result

	// Tries counts checks of the current item.
	Tries int

	// Seq increments on every Present. Delayed callbacks capture it and are
	// dropped when it has moved on.
	Seq uint64

	// Stats are the session counters.
	Stats Stats

	// ItemsSeen counts presented items.
	ItemsSeen int

	// Reveals counts revealed items.
	Reveals int

	// StartTime is when the session began.
	StartTime time.Time

	// Observer, if set, is notified of every transition.
	Observer Observer
}

// NewState creates a session. An empty id gets a random UUID.
func NewState(id string) *State {
	if id == "" {
		id = uuid.New().String()
	}
	return &State{ID: id, StartTime: time.Now()}
}

// Present makes item the current question and clears all per-item state.
func (s *State) Present(item *quiz.Item) {
	s.Item = item
	s.Phase = PhasePresented
	s.Input = quiz.Submission{}
	s.LastResult = nil
	s.Tries = 0
	s.Seq++
	s.ItemsSeen++
	if s.Observer != nil {
		s.Observer.ItemPresented(s)
	}
}

// AcceptsInput reports whether the current item can still be answered.
func (s *State) AcceptsInput() bool {
	return s.Item != nil && (s.Phase == PhasePresented || s.Phase == PhaseCheckedIncorrect)
}

// Check validates sub against the current item and folds the outcome into
// the statistics.
func (s *State) Check(sub quiz.Submission, p quiz.Policy) (quiz.Result, error) {
	if s.Item == nil {
		return quiz.Result{}, ErrNoItem
	}
	if !s.AcceptsInput() {
		return quiz.Result{}, ErrInputFrozen
	}

	s.Input = sub
	r := quiz.Validate(s.Item, sub, p)
	s.LastResult = &r
	s.Tries++
	s.Stats.Record(r.Correct)
	if r.Correct {
		s.Phase = PhaseCheckedCorrect
	} else {
		s.Phase = PhaseCheckedIncorrect
	}

	if s.Observer != nil {
		s.Observer.AnswerChecked(s, r)
	}
	return r, nil
}

// Retry clears the learner's input and keeps the same item. It returns false
// when the item is frozen.
func (s *State) Retry() bool {
	if !s.AcceptsInput() {
		return false
	}
	s.Input = quiz.Submission{}
	s.LastResult = nil
	s.Phase = PhasePresented
	return true
}

// Reveal discloses the answer and freezes input without counting an attempt.
// It returns false when there is nothing to reveal.
func (s *State) Reveal() bool {
	if s.Item == nil || s.Phase == PhaseRevealed || s.Phase == PhaseCheckedCorrect {
		return false
	}
	s.Phase = PhaseRevealed
	s.Reveals++
	if s.Observer != nil {
		s.Observer.ItemRevealed(s)
	}
	return true
}
