package trainer

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/router"
	"github.com/abhisek/solfa/internal/screen"
	"github.com/abhisek/solfa/internal/screens/summary"
	sess "github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/ui/components"
	"github.com/abhisek/solfa/internal/ui/layout"
)

// Settings is everything the trainer needs from setup or config.
type Settings struct {
	Options         quiz.Options
	Policy          quiz.Policy
	AutoNext        bool
	AutoNextDelay   time.Duration
	SessionDuration time.Duration
}

// TrainerScreen presents one item at a time with an input per answerable
// field.
type TrainerScreen struct {
	settings  Settings
	generator *quiz.Generator
	state     *sess.State
	timer     *sess.Countdown
	inputs    [3]components.TextInput // indexed by quiz.Field
	focus     quiz.Field
	hint      string
	timeUp    bool
	errMsg    string
	now       func() time.Time
}

var _ screen.Screen = (*TrainerScreen)(nil)
var _ screen.KeyHintProvider = (*TrainerScreen)(nil)
var _ screen.StatsProvider = (*TrainerScreen)(nil)

// New creates a TrainerScreen. obs may be nil.
func New(generator *quiz.Generator, settings Settings, obs sess.Observer) *TrainerScreen {
	state := sess.NewState("")
	state.Observer = obs
	return &TrainerScreen{
		settings:  settings,
		generator: generator,
		state:     state,
		timer:     sess.NewCountdown(settings.SessionDuration),
		now:       time.Now,
	}
}

func (s *TrainerScreen) Init() tea.Cmd {
	return tea.Batch(s.nextItem(), s.startTimer())
}

func (s *TrainerScreen) Title() string {
	return "Trainer"
}

// HeaderStats carries the score and the session clock into the frame.
func (s *TrainerScreen) HeaderStats() layout.HeaderStats {
	st := s.state.Stats
	return layout.HeaderStats{
		Correct:  st.Correct,
		Attempts: st.Attempts,
		Streak:   st.Streak,
		Clock:    sess.FormatRemaining(s.timer.Remaining),
		Paused:   !s.timer.Running() && !s.timeUp,
	}
}

func (s *TrainerScreen) KeyHints() []layout.KeyHint {
	if !s.state.AcceptsInput() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+S", Description: "Timer"},
			{Key: "Esc", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Field"},
		{Key: "Enter", Description: "Check"},
		{Key: "?", Description: "Hint"},
		{Key: "!", Description: "Reveal"},
		{Key: "Ctrl+R", Description: "Retry"},
		{Key: "Ctrl+N", Description: "Skip"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (s *TrainerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case autoNextMsg:
		if msg.Seq != s.state.Seq || s.state.Phase != sess.PhaseCheckedCorrect {
			return s, nil
		}
		return s, s.nextItem()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Item == nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *TrainerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, s.finish()
	case "ctrl+n":
		return s, s.nextItem()
	case "ctrl+s":
		if s.timer.Running() {
			s.timer.Pause()
			return s, nil
		}
		return s, s.startTimer()
	case "ctrl+t":
		s.timer.Reset()
		s.timeUp = false
		return s, nil
	case "tab":
		return s, s.cycleFocus(1)
	case "shift+tab":
		return s, s.cycleFocus(-1)
	case "enter":
		if !s.state.AcceptsInput() {
			return s, s.nextItem()
		}
		return s, s.check()
	case "ctrl+r":
		s.retry()
		return s, s.focusField(s.focus)
	case "?":
		if s.state.Item != nil {
			s.hint = quiz.Hint(s.state.Item)
		}
		return s, nil
	case "!":
		s.reveal()
		return s, nil
	}

	if !s.state.AcceptsInput() {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

// nextItem generates and presents a new item, resetting every input.
func (s *TrainerScreen) nextItem() tea.Cmd {
	item, err := s.generator.Next(s.settings.Options)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.hint = ""
	s.state.Present(item)

	labels := map[quiz.Field]string{
		quiz.FieldNote:    "Note",
		quiz.FieldSolfege: "Solfege",
		quiz.FieldDegree:  "Degree",
	}
	placeholders := map[quiz.Field]string{
		quiz.FieldNote:    "e.g. F#",
		quiz.FieldSolfege: "e.g. sol",
		quiz.FieldDegree:  "1-7, 3rd, iii",
	}
	for _, f := range quiz.AllFields() {
		in := components.NewTextInput(labels[f], placeholders[f], 8)
		if item.IsGiven(f) {
			in.Freeze(item.Value(f))
		}
		s.inputs[f] = in
	}
	return s.focusField(item.Answerable()[0])
}

func (s *TrainerScreen) focusField(f quiz.Field) tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	s.focus = f
	return s.inputs[f].Focus()
}

func (s *TrainerScreen) cycleFocus(delta int) tea.Cmd {
	if s.state.Item == nil || !s.state.AcceptsInput() {
		return nil
	}
	fields := s.state.Item.Answerable()
	idx := 0
	for i, f := range fields {
		if f == s.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return s.focusField(fields[idx])
}

func (s *TrainerScreen) submission() quiz.Submission {
	var sub quiz.Submission
	for _, f := range s.state.Item.Answerable() {
		sub = sub.Set(f, s.inputs[f].Value())
	}
	return sub
}

// check validates the inputs, marks each field and schedules auto-advance
// on success.
func (s *TrainerScreen) check() tea.Cmd {
	r, err := s.state.Check(s.submission(), s.settings.Policy)
	if err != nil {
		if !errors.Is(err, sess.ErrInputFrozen) {
			s.errMsg = err.Error()
		}
		return nil
	}

	for _, f := range s.state.Item.Answerable() {
		if r.FieldCorrect(f) {
			s.inputs[f].Mark = components.MarkCorrect
		} else {
			s.inputs[f].Mark = components.MarkIncorrect
		}
	}
	if !r.Correct {
		return nil
	}

	for i := range s.inputs {
		s.inputs[i].Freeze(s.inputs[i].Value())
	}
	if !s.settings.AutoNext {
		return nil
	}
	seq := s.state.Seq
	return tea.Tick(s.settings.AutoNextDelay, func(time.Time) tea.Msg {
		return autoNextMsg{Seq: seq}
	})
}

// retry clears the answerable inputs and keeps the item.
func (s *TrainerScreen) retry() {
	if !s.state.Retry() {
		return
	}
	s.hint = ""
	for _, f := range s.state.Item.Answerable() {
		s.inputs[f].SetValue("")
		s.inputs[f].Mark = components.MarkNone
	}
}

// reveal fills every field with the answer and freezes input.
func (s *TrainerScreen) reveal() {
	if !s.state.Reveal() {
		return
	}
	for _, f := range quiz.AllFields() {
		s.inputs[f].Freeze(s.state.Item.Value(f))
		s.inputs[f].Mark = components.MarkNone
	}
}

func (s *TrainerScreen) startTimer() tea.Cmd {
	gen, ok := s.timer.Start()
	if !ok {
		return nil
	}
	return tickCmd(gen)
}

func (s *TrainerScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	res := s.timer.Tick(msg.Gen)
	if res.Expired {
		s.timeUp = true
		return s, nil
	}
	if res.Continue {
		return s, tickCmd(msg.Gen)
	}
	return s, nil
}

// finish swaps the trainer for the session summary. From there Enter
// starts a fresh trainer with the same settings.
func (s *TrainerScreen) finish() tea.Cmd {
	sum := sess.BuildSummary(s.state, s.now())
	again := func() screen.Screen {
		return New(s.generator, s.settings, s.state.Observer)
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, again)}
	}
}

// feedback is the status line under the inputs.
func (s *TrainerScreen) feedback() (string, bool) {
	switch s.state.Phase {
	case sess.PhaseCheckedCorrect:
		return "Correct!", true
	case sess.PhaseCheckedIncorrect:
		return "Not quite: " + strings.Join(quiz.Mistakes(s.state.Item, *s.state.LastResult), ", "), false
	case sess.PhaseRevealed:
		return quiz.Reveal(s.state.Item), false
	default:
		return "", false
	}
}

// tickCmd returns a one-second tick for countdown generation gen.
func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(sess.TickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{Gen: gen}
	})
}
