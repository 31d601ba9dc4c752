package session

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/theory"
	"github.com/abhisek/solfa/pkg/logger"
)

type recordingObserver struct {
	presented int
	checked   []bool
	revealed  int
}

func (r *recordingObserver) ItemPresented(*State) { r.presented++ }
func (r *recordingObserver) AnswerChecked(_ *State, res quiz.Result) {
	r.checked = append(r.checked, res.Correct)
}
func (r *recordingObserver) ItemRevealed(*State) { r.revealed++ }

func testItem(t *testing.T) *quiz.Item {
	t.Helper()
	// F major, degree 4: note Bb, solfege fa.
	it, err := quiz.BuildItem("F", theory.ModeMajor, 4, quiz.PromptDegreeGiven, false)
	if err != nil {
		t.Fatalf("build item: %v", err)
	}
	return it
}

func TestNewState_AssignsID(t *testing.T) {
	a, b := NewState(""), NewState("")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct generated IDs, got %q and %q", a.ID, b.ID)
	}
	if NewState("fixed").ID != "fixed" {
		t.Error("explicit ID not kept")
	}
}

func TestCheck_NoItem(t *testing.T) {
	s := NewState("t")
	if _, err := s.Check(quiz.Submission{}, quiz.Policy{}); !errors.Is(err, ErrNoItem) {
		t.Errorf("expected ErrNoItem, got %v", err)
	}
}

func TestCheck_IncorrectThenRetryThenCorrect(t *testing.T) {
	obs := &recordingObserver{}
	s := NewState("t")
	s.Observer = obs
	s.Present(testItem(t))

	r, err := s.Check(quiz.Submission{Note: "B", Solfege: "fa"}, quiz.Policy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Correct || s.Phase != PhaseCheckedIncorrect {
		t.Fatalf("expected incorrect check, phase %s", s.Phase)
	}
	if s.Stats.Attempts != 1 || s.Stats.Streak != 0 {
		t.Errorf("stats = %+v", s.Stats)
	}

	if !s.Retry() {
		t.Fatal("retry should be allowed after an incorrect check")
	}
	if s.Phase != PhasePresented || s.Input != (quiz.Submission{}) || s.LastResult != nil {
		t.Errorf("retry did not clear input: phase %s input %+v", s.Phase, s.Input)
	}

	seq := s.Seq
	r, err = s.Check(quiz.Submission{Note: "Bb", Solfege: "fa"}, quiz.Policy{})
	if err != nil || !r.Correct {
		t.Fatalf("expected correct check, got %+v, %v", r, err)
	}
	if s.Phase != PhaseCheckedCorrect {
		t.Errorf("phase = %s, want checked-correct", s.Phase)
	}
	if s.Seq != seq {
		t.Error("retry and check must keep the same item sequence")
	}
	if s.Stats.Attempts != 2 || s.Stats.Correct != 1 || s.Stats.Streak != 1 {
		t.Errorf("stats = %+v", s.Stats)
	}
	if s.Tries != 2 {
		t.Errorf("tries = %d, want 2", s.Tries)
	}

	if obs.presented != 1 || len(obs.checked) != 2 || !obs.checked[1] {
		t.Errorf("observer saw %+v", obs)
	}
}

func TestCheck_FrozenAfterCorrect(t *testing.T) {
	s := NewState("t")
	s.Present(testItem(t))
	if _, err := s.Check(quiz.Submission{Note: "Bb", Solfege: "fa"}, quiz.Policy{}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Check(quiz.Submission{Note: "Bb", Solfege: "fa"}, quiz.Policy{}); !errors.Is(err, ErrInputFrozen) {
		t.Errorf("expected ErrInputFrozen, got %v", err)
	}
	if s.Retry() {
		t.Error("retry must not reopen a correctly answered item")
	}
	if s.Reveal() {
		t.Error("reveal after a correct answer should be a no-op")
	}
	if s.Stats.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", s.Stats.Attempts)
	}
}

func TestReveal_FreezesWithoutAttempt(t *testing.T) {
	obs := &recordingObserver{}
	s := NewState("t")
	s.Observer = obs
	s.Present(testItem(t))

	if !s.Reveal() {
		t.Fatal("expected reveal to succeed")
	}
	if s.Phase != PhaseRevealed || s.AcceptsInput() {
		t.Errorf("phase %s, accepts input %v", s.Phase, s.AcceptsInput())
	}
	if s.Stats.Attempts != 0 {
		t.Errorf("reveal counted an attempt: %+v", s.Stats)
	}
	if _, err := s.Check(quiz.Submission{Note: "Bb", Solfege: "fa"}, quiz.Policy{}); !errors.Is(err, ErrInputFrozen) {
		t.Errorf("expected ErrInputFrozen after reveal, got %v", err)
	}
	if s.Reveal() {
		t.Error("second reveal should be a no-op")
	}
	if s.Reveals != 1 || obs.revealed != 1 {
		t.Errorf("reveals = %d, observer %d", s.Reveals, obs.revealed)
	}
}

func TestPresent_ResetsItemState(t *testing.T) {
	s := NewState("t")
	s.Present(testItem(t))
	s.Reveal()

	seq := s.Seq
	s.Present(testItem(t))
	if s.Phase != PhasePresented || s.Tries != 0 || s.Seq != seq+1 {
		t.Errorf("present did not reset: phase %s tries %d seq %d", s.Phase, s.Tries, s.Seq)
	}
	if s.ItemsSeen != 2 {
		t.Errorf("items seen = %d, want 2", s.ItemsSeen)
	}
}

func TestStats(t *testing.T) {
	var st Stats
	for _, c := range []bool{true, true, false, true, true, true} {
		st.Record(c)
	}
	if st.Attempts != 6 || st.Correct != 5 || st.Streak != 3 || st.BestStreak != 3 {
		t.Errorf("stats = %+v", st)
	}
	if got := st.Accuracy(); got < 83.3 || got > 83.4 {
		t.Errorf("accuracy = %f", got)
	}
	st.Reset()
	if st != (Stats{}) || st.Accuracy() != 0 {
		t.Errorf("reset left %+v", st)
	}
}

func TestCountdown(t *testing.T) {
	c := NewCountdown(3 * time.Second)
	gen, ok := c.Start()
	if !ok || !c.Running() {
		t.Fatal("expected countdown to start")
	}
	if _, again := c.Start(); again {
		t.Error("second Start while running should not start a new tick chain")
	}

	if r := c.Tick(gen); !r.Continue {
		t.Errorf("tick 1 = %+v", r)
	}
	if r := c.Tick(gen); !r.Continue {
		t.Errorf("tick 2 = %+v", r)
	}
	if r := c.Tick(gen); !r.Expired || r.Continue {
		t.Errorf("tick 3 = %+v, want expired", r)
	}
	if c.Running() || c.Remaining != 0 {
		t.Errorf("after expiry: running %v remaining %s", c.Running(), c.Remaining)
	}
	if _, ok := c.Start(); ok {
		t.Error("expired countdown must not restart without reset")
	}
}

func TestCountdown_PauseInvalidatesPendingTick(t *testing.T) {
	c := NewCountdown(time.Minute)
	old, _ := c.Start()
	c.Pause()
	cur, ok := c.Start()
	if !ok {
		t.Fatal("expected restart after pause")
	}
	if r := c.Tick(old); r.Continue || r.Expired {
		t.Error("stale tick should be ignored")
	}
	if r := c.Tick(cur); !r.Continue {
		t.Error("current tick should continue")
	}
	if c.Remaining != 59*time.Second {
		t.Errorf("remaining = %s, want 59s", c.Remaining)
	}

	c.Reset()
	if c.Running() || c.Remaining != time.Minute {
		t.Errorf("reset: running %v remaining %s", c.Running(), c.Remaining)
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := map[time.Duration]string{
		60 * time.Minute:              "60:00",
		90 * time.Second:              "01:30",
		0:                             "00:00",
		-time.Second:                  "00:00",
		5*time.Minute + 9*time.Second: "05:09",
	}
	for d, want := range tests {
		if got := FormatRemaining(d); got != want {
			t.Errorf("FormatRemaining(%s) = %q, want %q", d, got, want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	s := NewState("sum")
	s.StartTime = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.Present(testItem(t))
	_, _ = s.Check(quiz.Submission{Note: "Bb", Solfege: "fa"}, quiz.Policy{})
	s.Present(testItem(t))
	s.Reveal()

	sum := BuildSummary(s, s.StartTime.Add(5*time.Minute))
	if sum.SessionID != "sum" || sum.Duration != 5*time.Minute {
		t.Errorf("summary = %+v", sum)
	}
	if sum.ItemsSeen != 2 || sum.Attempts != 1 || sum.Correct != 1 || sum.Reveals != 1 || sum.Accuracy != 100 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestLogObserver_DebugOnly(t *testing.T) {
	t.Cleanup(func() { logger.SetLevel(slog.LevelInfo) })

	var buf bytes.Buffer
	s := NewState("log")
	s.Observer = &LogObserver{Log: logger.New(&buf)}

	logger.SetLevel(slog.LevelInfo)
	s.Present(testItem(t))
	_, _ = s.Check(quiz.Submission{Note: "B", Solfege: "fa"}, quiz.Policy{})
	s.Reveal()
	if buf.Len() != 0 {
		t.Errorf("expected no records at info, got %q", buf.String())
	}

	logger.SetLevel(slog.LevelDebug)
	s.Present(testItem(t))
	_, _ = s.Check(quiz.Submission{Note: "Bb", Solfege: "fa"}, quiz.Policy{})
	for _, want := range []string{"item presented", "answer checked", "session_id=log"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("debug log missing %q: %q", want, buf.String())
		}
	}
}
