// Package metrics exposes Prometheus counters for quiz activity.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/solfa/internal/quiz"
	"github.com/abhisek/solfa/internal/session"
)

const (
	defaultNamespace = "solfa"
	defaultSubsystem = "quiz"
	shutdownTimeout  = 2 * time.Second
)

// Recorder records session events as Prometheus metrics. It implements
// session.Observer.
type Recorder struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	itemsGenerated *prometheus.CounterVec
	answers        *prometheus.CounterVec
	fieldMisses    *prometheus.CounterVec
	reveals        prometheus.Counter
	streak         prometheus.Gauge
}

var _ session.Observer = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(r *Recorder) { r.namespace = ns }
}

// WithSubsystem overrides the metric subsystem.
func WithSubsystem(sub string) Option {
	return func(r *Recorder) { r.subsystem = sub }
}

// WithRegistry registers metrics on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Recorder) { r.registry = reg }
}

// NewRecorder creates a Recorder. Each Recorder owns its registry unless
// WithRegistry is given.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(r.registry)
	r.itemsGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "items_generated_total",
		Help:      "Quiz items presented, by mode and prompt type",
	}, []string{"mode", "prompt_type"})

	r.answers = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "answers_total",
		Help:      "Answer checks, by result",
	}, []string{"result"})

	r.fieldMisses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "field_misses_total",
		Help:      "Incorrect answer fields, by field",
	}, []string{"field"})

	r.reveals = auto.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "reveals_total",
		Help:      "Items whose answer was revealed",
	})

	r.streak = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Subsystem: r.subsystem,
		Name:      "streak",
		Help:      "Current consecutive-correct streak",
	})
	return r
}

func (r *Recorder) ItemPresented(s *session.State) {
	r.itemsGenerated.WithLabelValues(s.Item.Mode.String(), s.Item.Prompt.String()).Inc()
}

func (r *Recorder) AnswerChecked(s *session.State, res quiz.Result) {
	result := "incorrect"
	if res.Correct {
		result = "correct"
	}
	r.answers.WithLabelValues(result).Inc()
	for _, f := range s.Item.Answerable() {
		if !res.FieldCorrect(f) {
			r.fieldMisses.WithLabelValues(f.String()).Inc()
		}
	}
	r.streak.Set(float64(s.Stats.Streak))
}

func (r *Recorder) ItemRevealed(*session.State) {
	r.reveals.Inc()
}

// Registry returns the registry the metrics are registered on.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, r *Recorder) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
