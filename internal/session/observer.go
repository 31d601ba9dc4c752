package session

import (
	"context"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/pkg/logger"
)

// Observer is notified of session transitions. Implementations must not
// block.
type Observer interface {
	ItemPresented(s *State)
	AnswerChecked(s *State, r quiz.Result)
	ItemRevealed(s *State)
}

// Observers fans every event out to each non-nil observer in order.
type Observers []Observer

func (o Observers) ItemPresented(s *State) {
	for _, ob := range o {
		if ob != nil {
			ob.ItemPresented(s)
		}
	}
}

func (o Observers) AnswerChecked(s *State, r quiz.Result) {
	for _, ob := range o {
		if ob != nil {
			ob.AnswerChecked(s, r)
		}
	}
}

func (o Observers) ItemRevealed(s *State) {
	for _, ob := range o {
		if ob != nil {
			ob.ItemRevealed(s)
		}
	}
}

// LogObserver writes one structured debug record per transition.
type LogObserver struct {
	Log logger.Logger
}

// NewLogObserver returns a LogObserver on the global "session" logger.
func NewLogObserver() *LogObserver {
	return &LogObserver{Log: logger.Named("session")}
}

func (l *LogObserver) ItemPresented(s *State) {
	it := s.Item
	l.Log.Debug(context.Background(), "item presented",
		logger.String("session_id", s.ID),
		logger.String("key", it.Key),
		logger.String("mode", it.Mode.String()),
		logger.String("prompt", it.Prompt.String()),
		logger.Int("degree", it.Degree),
	)
}

func (l *LogObserver) AnswerChecked(s *State, r quiz.Result) {
	l.Log.Debug(context.Background(), "answer checked",
		logger.String("session_id", s.ID),
		logger.String("key", s.Item.Key),
		logger.String("mode", s.Item.Mode.String()),
		logger.Bool("correct", r.Correct),
		logger.Bool("note_ok", r.Note),
		logger.Bool("solfege_ok", r.Solfege),
		logger.Bool("degree_ok", r.Degree),
		logger.Int("tries", s.Tries),
		logger.Int("streak", s.Stats.Streak),
	)
}

func (l *LogObserver) ItemRevealed(s *State) {
	l.Log.Debug(context.Background(), "answer revealed",
		logger.String("session_id", s.ID),
		logger.String("key", s.Item.Key),
		logger.Int("degree", s.Item.Degree),
	)
}
