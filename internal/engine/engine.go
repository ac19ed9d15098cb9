package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/DoyleJ11/odd-one-out/internal/clock"
)

var ErrNoActiveRound = errors.New("no active round")
var ErrNotInProgress = errors.New("session not in progress")
var ErrNotOver = errors.New("session not over")
var ErrUnsupportedCommand = errors.New("unsupported command")

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusOver       Status = "over"
)

type Session struct {
	Status        Status
	Score         int
	ReactionTimes []float64
	Round         *Round // nil unless InProgress
}

type CommandType string

const (
	CmdStart   CommandType = "Start"
	CmdRestart CommandType = "Restart"
	CmdStop    CommandType = "Stop"
	CmdChoose  CommandType = "Choose"
)

/*
	CmdStart / CmdRestart -> EvtSessionStarted -> EvtRoundStarted
	CmdStop               -> EvtSessionOver
	CmdChoose (odd)       -> EvtChoiceCorrect -> EvtRoundStarted
	CmdChoose (other)     -> EvtChoiceWrong -> EvtSessionOver
*/

type Command struct {
	Type  CommandType
	Color Color
	At    time.Time // zero means "now" on the engine clock
}

type EventType string

const (
	EvtSessionStarted EventType = "SessionStarted"
	EvtRoundStarted   EventType = "RoundStarted"
	EvtChoiceCorrect  EventType = "ChoiceCorrect"
	EvtChoiceWrong    EventType = "ChoiceWrong"
	EvtSessionOver    EventType = "SessionOver"
)

type Event struct {
	Type           EventType
	Color          Color
	ElapsedSeconds float64
	Score          int
}

// Engine is not safe for concurrent use; each session owner gets its own.
type Engine struct {
	rng   *rand.Rand
	clock clock.Clock
}

func New(rng *rand.Rand, clk clock.Clock) *Engine {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Engine{rng: rng, clock: clk}
}

func (e *Engine) Clock() clock.Clock { return e.clock }

// Apply returns the input session untouched whenever it returns an error.
func (e *Engine) Apply(s Session, cmd Command) ([]Event, Session, error) {
	switch cmd.Type {
	case CmdStart, CmdRestart:
		round := e.NewRound()
		next := Session{
			Status:        StatusInProgress,
			ReactionTimes: []float64{},
			Round:         &round,
		}
		events := []Event{
			{Type: EvtSessionStarted},
			{Type: EvtRoundStarted, Color: round.OddColor},
		}
		return events, next, nil

	case CmdStop:
		if s.Status != StatusInProgress {
			return nil, s, ErrNotInProgress
		}
		next := s
		next.Status = StatusOver
		next.Round = nil
		return []Event{{Type: EvtSessionOver, Score: s.Score}}, next, nil

	case CmdChoose:
		if s.Status != StatusInProgress || s.Round == nil {
			return nil, s, ErrNoActiveRound
		}
		at := cmd.At
		if at.IsZero() {
			at = e.clock.Now()
		}
		res := ResolveChoice(*s.Round, cmd.Color, at)

		next := s
		// Clone so the caller's slice never sees our append
		next.ReactionTimes = append(slices.Clone(s.ReactionTimes), res.ElapsedSeconds)

		if res.Correct {
			next.Score++
			round := e.NewRound()
			next.Round = &round
			events := []Event{
				{Type: EvtChoiceCorrect, Color: cmd.Color, ElapsedSeconds: res.ElapsedSeconds, Score: next.Score},
				{Type: EvtRoundStarted, Color: round.OddColor},
			}
			return events, next, nil
		}

		next.Status = StatusOver
		next.Round = nil
		events := []Event{
			{Type: EvtChoiceWrong, Color: cmd.Color, ElapsedSeconds: res.ElapsedSeconds, Score: next.Score},
			{Type: EvtSessionOver, Score: next.Score},
		}
		return events, next, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}
