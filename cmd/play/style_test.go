package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
)

func TestSwatchOptions_KeepsDuplicatesDistinct(t *testing.T) {
	odd, common := engine.RGB(200, 0, 0), engine.RGB(201, 0, 0)
	r := engine.Round{
		OddColor:    odd,
		CommonColor: common,
		Options:     [engine.OptionCount]engine.Color{common, odd, common, common},
	}

	labels, byLabel := swatchOptions(r)
	assert.Len(t, labels, engine.OptionCount)
	assert.Len(t, byLabel, engine.OptionCount)
	assert.Equal(t, odd, byLabel[labels[1]])
	assert.Equal(t, common, byLabel[labels[0]])
}

func TestReactionText(t *testing.T) {
	assert.Equal(t, "N/A", reactionText(engine.NewEmptySession()))
	assert.Equal(t, "0.42", reactionText(engine.Session{ReactionTimes: []float64{1, 0.42}}))
}

func TestGameOverText(t *testing.T) {
	none := gameOverText(engine.Summary{FinalScore: 0})
	assert.Contains(t, none, "Your final score is: 0")
	assert.Contains(t, none, "N/A")

	slow := gameOverText(engine.Summary{FinalScore: 3, Average: 0.75, HasAverage: true, Comparison: engine.Slower})
	assert.Contains(t, slow, "0.75 seconds")
	assert.Contains(t, slow, "Slower than")
}
