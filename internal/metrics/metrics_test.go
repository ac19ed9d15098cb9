package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
)

func TestObserveEvents(t *testing.T) {
	started := testutil.ToFloat64(SessionsStarted)
	rounds := testutil.ToFloat64(RoundsStarted)
	correct := testutil.ToFloat64(Choices.WithLabelValues("correct"))
	wrong := testutil.ToFloat64(Choices.WithLabelValues("wrong"))
	over := testutil.ToFloat64(SessionsOver)

	ObserveEvents([]engine.Event{
		{Type: engine.EvtSessionStarted},
		{Type: engine.EvtRoundStarted},
		{Type: engine.EvtChoiceCorrect, ElapsedSeconds: 0.3},
		{Type: engine.EvtRoundStarted},
		{Type: engine.EvtChoiceWrong, ElapsedSeconds: 0.9},
		{Type: engine.EvtSessionOver},
	})

	assert.Equal(t, started+1, testutil.ToFloat64(SessionsStarted))
	assert.Equal(t, rounds+2, testutil.ToFloat64(RoundsStarted))
	assert.Equal(t, correct+1, testutil.ToFloat64(Choices.WithLabelValues("correct")))
	assert.Equal(t, wrong+1, testutil.ToFloat64(Choices.WithLabelValues("wrong")))
	assert.Equal(t, over+1, testutil.ToFloat64(SessionsOver))
}
