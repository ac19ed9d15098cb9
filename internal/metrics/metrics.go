// Package metrics holds the Prometheus collectors for game activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
)

const namespace = "oddoneout"

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Sessions started or restarted.",
	})

	SessionsOver = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_over_total",
		Help:      "Sessions ended by a wrong choice or a stop.",
	})

	RoundsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_started_total",
		Help:      "Rounds generated.",
	})

	Choices = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "choices_total",
		Help:      "Resolved choices by outcome.",
	}, []string{"outcome"})

	ReactionSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reaction_seconds",
		Help:      "Reaction time of resolved choices.",
		Buckets:   []float64{0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.75, 1, 1.5, 2, 3, 5},
	})

	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_rooms",
		Help:      "Rooms currently held by the hub.",
	})
)

func ObserveEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EvtSessionStarted:
			SessionsStarted.Inc()
		case engine.EvtRoundStarted:
			RoundsStarted.Inc()
		case engine.EvtChoiceCorrect:
			Choices.WithLabelValues("correct").Inc()
			ReactionSeconds.Observe(ev.ElapsedSeconds)
		case engine.EvtChoiceWrong:
			Choices.WithLabelValues("wrong").Inc()
			ReactionSeconds.Observe(ev.ElapsedSeconds)
		case engine.EvtSessionOver:
			SessionsOver.Inc()
		}
	}
}
