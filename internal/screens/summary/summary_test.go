package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solfa/internal/router"
	"github.com/abhisek/solfa/internal/screen"
	"github.com/abhisek/solfa/internal/session"
	"github.com/abhisek/solfa/internal/ui/layout"
)

func testSummary() *session.Summary {
	return &session.Summary{
		SessionID:  "test-session",
		Duration:   15 * time.Minute,
		ItemsSeen:  12,
		Attempts:   14,
		Correct:    11,
		Accuracy:   float64(11) / float64(14) * 100,
		BestStreak: 6,
		Reveals:    1,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "15:00", "79%"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil, nil)
	if s.View(80, 24) != "" {
		t.Error("expected empty view without a summary")
	}
	if s.HeaderStats() != (layout.HeaderStats{}) {
		t.Error("expected zero header stats without a summary")
	}
}

func TestSummaryScreen_HeaderStats(t *testing.T) {
	got := New(testSummary(), nil).HeaderStats()
	want := layout.HeaderStats{Correct: 11, Attempts: 14, Streak: 6}
	if got != want {
		t.Errorf("HeaderStats = %+v, want %+v", got, want)
	}
}

func TestSummaryScreen_EnterWithoutRestartPops(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Enter without a restart should return to setup")
	}
}

func TestSummaryScreen_EnterStartsAnotherRound(t *testing.T) {
	built := 0
	next := New(nil, nil)
	s := New(testSummary(), func() screen.Screen {
		built++
		return next
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("Enter should replace the summary, got %T", cmd())
	}
	if msg.Screen != next || built != 1 {
		t.Errorf("replacement = %v, built %d times", msg.Screen, built)
	}
}

func TestSummaryScreen_EscReturnsToSetup(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return New(nil, nil) })
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Esc should pop back to setup")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	hints := New(testSummary(), nil).KeyHints()
	if len(hints) != 1 || hints[0].Key != "Enter/Esc" {
		t.Errorf("hints without restart = %+v", hints)
	}

	hints = New(testSummary(), func() screen.Screen { return nil }).KeyHints()
	if len(hints) != 2 || hints[0].Description != "Practice again" || hints[1].Description != "Setup" {
		t.Errorf("hints with restart = %+v", hints)
	}
}
