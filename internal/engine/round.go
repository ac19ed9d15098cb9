package engine

import (
	"math"
	"time"
)

const OptionCount = 4

type Round struct {
	OddColor    Color
	CommonColor Color
	Options     [OptionCount]Color
	StartedAt   time.Time
}

type Resolution struct {
	Correct        bool
	ElapsedSeconds float64
}

// GenerateColor draws six independent hex digits.
func (e *Engine) GenerateColor() Color {
	var c Color
	for range 6 {
		c = c<<4 | Color(e.rng.IntN(16))
	}
	return c
}

// NewRound builds three common swatches and one odd swatch in random order.
// Odd and common may collide; that round simply has no visible odd swatch.
func (e *Engine) NewRound() Round {
	odd := e.GenerateColor()
	common := e.GenerateColor()

	r := Round{
		OddColor:    odd,
		CommonColor: common,
		Options:     [OptionCount]Color{common, common, common, odd},
		StartedAt:   e.clock.Now(),
	}
	// rand.Shuffle is Fisher-Yates
	e.rng.Shuffle(len(r.Options), func(i, j int) {
		r.Options[i], r.Options[j] = r.Options[j], r.Options[i]
	})
	return r
}

// ResolveChoice compares by value, so any swatch carrying the odd color counts.
func ResolveChoice(r Round, chosen Color, now time.Time) Resolution {
	elapsed := round2(now.Sub(r.StartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	return Resolution{
		Correct:        chosen == r.OddColor,
		ElapsedSeconds: elapsed,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
