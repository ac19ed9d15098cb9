package engine

import "errors"

var ErrNoReactionTimes = errors.New("no reaction times recorded")

// BaselineSeconds is the reference average reaction time of a healthy adult.
const BaselineSeconds = 0.25

type Comparison int

const (
	ComparisonNone Comparison = iota
	Faster
	Equal
	Slower
)

func (c Comparison) String() string {
	switch c {
	case Faster:
		return "faster"
	case Equal:
		return "equal"
	case Slower:
		return "slower"
	default:
		return "none"
	}
}

func (c Comparison) Message() string {
	switch c {
	case Faster:
		return "Faster than a healthy person's average reaction time!"
	case Equal:
		return "Your reaction time is exactly like a healthy person's average!"
	case Slower:
		return "Slower than a healthy person's average reaction time."
	default:
		return ""
	}
}

func AverageReactionTime(times []float64) (float64, error) {
	if len(times) == 0 {
		return 0, ErrNoReactionTimes
	}
	var total float64
	for _, t := range times {
		total += t
	}
	return round2(total / float64(len(times))), nil
}

// CompareToBaseline uses plain float comparison. Anything neither below nor
// equal to the baseline, NaN included, reports Slower.
func CompareToBaseline(avg float64) Comparison {
	switch {
	case avg < BaselineSeconds:
		return Faster
	case avg == BaselineSeconds:
		return Equal
	default:
		return Slower
	}
}

type Summary struct {
	FinalScore int
	Average    float64
	HasAverage bool
	Comparison Comparison
}

// Summarize builds the game-over report. Average and Comparison are only
// set when at least one round was resolved.
func Summarize(s Session) (Summary, error) {
	if s.Status != StatusOver {
		return Summary{}, ErrNotOver
	}
	sum := Summary{FinalScore: s.Score}
	avg, err := AverageReactionTime(s.ReactionTimes)
	if errors.Is(err, ErrNoReactionTimes) {
		return sum, nil
	}
	sum.Average = avg
	sum.HasAverage = true
	sum.Comparison = CompareToBaseline(avg)
	return sum, nil
}
