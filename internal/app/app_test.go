package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solfa/internal/config"
	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/router"
)

func testModel() AppModel {
	return newAppModel(Options{Config: config.New(), Generator: quiz.NewSeededGenerator(3)})
}

// drive feeds msg to the model and runs any navigation command it returns.
func drive(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Enharmonic = true
	cfg.AutoNext = false

	s := Settings(cfg)
	if !s.Policy.Enharmonic || s.AutoNext {
		t.Errorf("Settings = %+v", s)
	}
	if s.Options.Key != "C" || s.SessionDuration != cfg.SessionDuration() {
		t.Errorf("Settings options = %+v", s.Options)
	}
}

func TestAppStartsOnSetup(t *testing.T) {
	m := testModel()
	if got := m.router.Active().Title(); got != "Setup" {
		t.Errorf("active = %q, want Setup", got)
	}
}

func TestAppNavigation(t *testing.T) {
	m := testModel()

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.router.Active().Title(); got != "Trainer" {
		t.Fatalf("active = %q, want Trainer", got)
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := m.router.Active().Title(); got != "Session Summary" {
		t.Fatalf("active = %q, want Session Summary", got)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2 (summary replaces trainer)", m.router.Depth())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.router.Active().Title(); got != "Trainer" {
		t.Fatalf("after practice again: active = %q, want Trainer", got)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2 (new trainer replaces summary)", m.router.Depth())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if got := m.router.Active().Title(); got != "Setup" {
		t.Errorf("active = %q, want Setup", got)
	}
}

func TestAppCtrlCQuits(t *testing.T) {
	_, cmd := testModel().Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAppFrame(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(AppModel)

	if !strings.Contains(m.frame(), "Solfa") {
		t.Error("expected header in frame")
	}
	m.View()

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(m.frame(), "⏱") {
		t.Error("expected the session clock in the trainer header")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(next.(AppModel).frame(), "needs a 80x24") {
		t.Error("expected min-size message")
	}
}
