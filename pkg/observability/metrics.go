// Package observability provides Prometheus-based metrics recording for the
// dialog engine, exposed to the engine through lifecycle hooks.
package observability

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records turn and dialog activity.
type Metrics struct {
	turnsTotal    *prometheus.CounterVec
	turnDuration  prometheus.Histogram
	dialogsBegun  *prometheus.CounterVec
	dialogsEnded  *prometheus.CounterVec
	promptRetries *prometheus.CounterVec
}

// NewMetrics registers the engine metrics on the given registerer. Pass
// prometheus.DefaultRegisterer for the usual global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		turnsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_turns_total",
				Help: "Total number of processed turns by outcome status",
			},
			[]string{"status"},
		),
		turnDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "parley_turn_duration_seconds",
				Help:    "Duration of turn processing in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		dialogsBegun: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_dialogs_begun_total",
				Help: "Total number of dialog frames pushed by dialog ID",
			},
			[]string{"dialog_id"},
		),
		dialogsEnded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_dialogs_ended_total",
				Help: "Total number of dialog frames popped by dialog ID",
			},
			[]string{"dialog_id"},
		),
		promptRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_prompt_retries_total",
				Help: "Total number of re-issued prompts by prompt ID",
			},
			[]string{"dialog_id"},
		),
	}
}

// Hooks adapts the metrics to the engine's lifecycle hook points.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurnEnd: func(_ context.Context, e *domain.TurnEvent) {
			m.turnsTotal.WithLabelValues(e.Status).Inc()
			m.turnDuration.Observe(e.Duration.Seconds())
		},
		OnDialogBegin: func(_ context.Context, e *domain.DialogEvent) {
			m.dialogsBegun.WithLabelValues(e.DialogID).Inc()
		},
		OnDialogEnd: func(_ context.Context, e *domain.DialogEvent) {
			m.dialogsEnded.WithLabelValues(e.DialogID).Inc()
		},
		OnPromptRetry: func(_ context.Context, e *domain.PromptRetryEvent) {
			m.promptRetries.WithLabelValues(e.DialogID).Inc()
		},
	}
}
