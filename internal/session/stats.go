package session

// Stats are process-lifetime session counters.
type Stats struct {
	Attempts   int
	Correct    int
	Streak     int // consecutive correct checks
	BestStreak int
}

// Record folds one check outcome into the counters.
func (st *Stats) Record(correct bool) {
	st.Attempts++
	if !correct {
		st.Streak = 0
		return
	}
	st.Correct++
	st.Streak++
	if st.Streak > st.BestStreak {
		st.BestStreak = st.Streak
	}
}

// Accuracy returns the percentage of correct attempts, 0 with no attempts.
func (st Stats) Accuracy() float64 {
	if st.Attempts == 0 {
		return 0
	}
	return float64(st.Correct) / float64(st.Attempts) * 100
}

// Reset zeroes every counter.
func (st *Stats) Reset() {
	*st = Stats{}
}
