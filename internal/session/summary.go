package session

import "time"

// Summary holds the end-of-session figures.
type Summary struct {
	SessionID  string
	Duration   time.Duration
	ItemsSeen  int
	Attempts   int
	Correct    int
	Accuracy   float64 // percent
	BestStreak int
	Reveals    int
}

// BuildSummary creates a Summary from the session state as of now.
func BuildSummary(s *State, now time.Time) *Summary {
	return &Summary{
		SessionID:  s.ID,
		Duration:   now.Sub(s.StartTime),
		ItemsSeen:  s.ItemsSeen,
		Attempts:   s.Stats.Attempts,
		Correct:    s.Stats.Correct,
		Accuracy:   s.Stats.Accuracy(),
		BestStreak: s.Stats.BestStreak,
		Reveals:    s.Reveals,
	}
}
