package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solfa/internal/config"
	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/router"
	"github.com/abhisek/solfa/internal/screens/setup"
	"github.com/abhisek/solfa/internal/screens/trainer"
	"github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// Config supplies the setup screen's initial selections.
	Config *config.Config

	// Generator draws items; nil uses a randomly seeded one.
	Generator *quiz.Generator

	// Observer receives session transitions; may be nil.
	Observer session.Observer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// Settings converts cfg into trainer settings.
func Settings(cfg *config.Config) trainer.Settings {
	return trainer.Settings{
		Options:         cfg.QuizOptions(),
		Policy:          cfg.Policy(),
		AutoNext:        cfg.AutoNext,
		AutoNextDelay:   cfg.AutoNextDelay(),
		SessionDuration: cfg.SessionDuration(),
	}
}

// newAppModel creates an AppModel rooted at the setup screen.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	gen := opts.Generator
	if gen == nil {
		gen = quiz.NewGenerator(nil)
	}
	return AppModel{
		router: router.New(setup.New(Settings(cfg), gen, opts.Observer)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.TooSmall(m.width, m.height)
	}

	title := m.router.Active().Title()
	header := layout.Header(title, m.router.HeaderStats(), m.width)

	footerHints, ok := m.router.KeyHints()
	if !ok {
		footerHints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	footer := layout.Footer(footerHints, m.width)

	content := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.Frame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
