package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/router"
	"github.com/abhisek/solfa/internal/screen"
	"github.com/abhisek/solfa/internal/screens/trainer"
	sess "github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/theory"
	"github.com/abhisek/solfa/internal/ui/components"
	"github.com/abhisek/solfa/internal/ui/layout"
	"github.com/abhisek/solfa/internal/ui/theme"
)

// Option rows, in display order.
const (
	rowMode = iota
	rowKey
	rowPrompt
	rowEnharmonic
	rowChromatic
	rowAutoNext
)

const (
	on  = "on"
	off = "off"
)

// SetupScreen lets the learner pick mode, key and prompt before practising.
type SetupScreen struct {
	options   components.OptionList
	base      trainer.Settings
	generator *quiz.Generator
	observer  sess.Observer
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen preselected from defaults.
func New(defaults trainer.Settings, generator *quiz.Generator, obs sess.Observer) *SetupScreen {
	opts := defaults.Options

	modes := make([]string, 0, 4)
	for _, m := range theory.AllModes() {
		modes = append(modes, m.String())
	}
	prompts := make([]string, 0, 4)
	for _, p := range quiz.AllPromptTypes() {
		prompts = append(prompts, p.String())
	}

	list := components.NewOptionList([]components.OptionItem{
		{Label: "Mode"},
		{Label: "Key"},
		{Label: "Prompt"},
		{Label: "Enharmonic", Choices: []string{off, on}},
		{Label: "Chromatic solfege", Choices: []string{off, on}},
		{Label: "Auto next", Choices: []string{off, on}},
	})
	list.SetChoices(rowMode, modes, opts.Mode.String())
	list.SetChoices(rowKey, keyChoices(opts.Mode), opts.Key)
	list.SetChoices(rowPrompt, prompts, opts.Prompt.String())
	list.SetChoices(rowEnharmonic, []string{off, on}, toggle(defaults.Policy.Enharmonic))
	list.SetChoices(rowChromatic, []string{off, on}, toggle(opts.ChromaticAware))
	list.SetChoices(rowAutoNext, []string{off, on}, toggle(defaults.AutoNext))

	return &SetupScreen{
		options:   list,
		base:      defaults,
		generator: generator,
		observer:  obs,
	}
}

// keyChoices lists "random" then the mode quality's keys in circle-of-fifths
// order.
func keyChoices(m theory.Mode) []string {
	return append([]string{quiz.RandomKey}, theory.Keys(m.Quality())...)
}

func toggle(b bool) string {
	if b {
		return on
	}
	return off
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Setting"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Settings returns the trainer settings currently selected.
func (s *SetupScreen) Settings() trainer.Settings {
	out := s.base
	mode, _ := theory.ParseMode(s.options.Value(rowMode))
	prompt, _ := quiz.ParsePromptType(s.options.Value(rowPrompt))
	out.Options = quiz.Options{
		Key:            s.options.Value(rowKey),
		Mode:           mode,
		Prompt:         prompt,
		ChromaticAware: s.options.Value(rowChromatic) == on,
	}
	out.Policy = quiz.Policy{Enharmonic: s.options.Value(rowEnharmonic) == on}
	out.AutoNext = s.options.Value(rowAutoNext) == on
	return out
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		t := trainer.New(s.generator, s.Settings(), s.observer)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: t} }
	}

	var row int
	var changed bool
	prevMode, _ := theory.ParseMode(s.options.Value(rowMode))
	s.options, row, changed = s.options.Update(msg)
	if changed && row == rowMode {
		mode, _ := theory.ParseMode(s.options.Value(rowMode))
		if mode.Quality() != prevMode.Quality() {
			// The old key is kept only if the new quality has it.
			s.options.SetChoices(rowKey, keyChoices(mode), s.options.Value(rowKey))
		}
	}
	return s, nil
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Scale degrees and solfege"))
	b.WriteString("\n")

	prompt, _ := quiz.ParsePromptType(s.options.Value(rowPrompt))
	b.WriteString(theme.Subtitle.Width(width).Render(prompt.DisplayName()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	return b.String()
}
