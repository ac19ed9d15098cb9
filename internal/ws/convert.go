package ws

import (
	"fmt"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
	"github.com/DoyleJ11/odd-one-out/internal/room"
	"github.com/DoyleJ11/odd-one-out/pkg/types"
)

func SnapshotMessage(snap room.Snapshot) types.ServerMessage {
	view := NewSessionView(snap.Session)
	return types.ServerMessage{Type: "StateSnapshot", Version: snap.Version, State: &view}
}

func ErrorMessage(err error) types.ServerMessage {
	return types.ServerMessage{Type: "Error", Error: err.Error()}
}

func NewSessionView(s engine.Session) types.SessionView {
	view := types.SessionView{
		Status:        string(s.Status),
		Score:         s.Score,
		Options:       []string{},
		ReactionTimes: append([]float64{}, s.ReactionTimes...),
	}
	if last, ok := s.LastReactionTime(); ok {
		view.LastReactionTime = &last
	}
	if s.Round != nil {
		for _, c := range s.Round.Options {
			view.Options = append(view.Options, c.String())
		}
	}
	if sum, err := engine.Summarize(s); err == nil {
		over := &types.GameOver{FinalScore: sum.FinalScore}
		if sum.HasAverage {
			avg := sum.Average
			over.AverageReactionTime = &avg
			over.Comparison = sum.Comparison.String()
			over.Message = sum.Comparison.Message()
		}
		view.Result = over
	}
	return view
}

// ToEngineCommand maps a wire message onto an engine command. The timestamp
// is left zero so the room stamps it on its own clock.
func ToEngineCommand(m types.ClientMessage) (engine.Command, error) {
	switch m.Type {
	case "Start":
		return engine.Command{Type: engine.CmdStart}, nil
	case "Restart":
		return engine.Command{Type: engine.CmdRestart}, nil
	case "Stop":
		return engine.Command{Type: engine.CmdStop}, nil
	case "Choose":
		c, err := engine.ParseColor(m.Color)
		if err != nil {
			return engine.Command{}, err
		}
		return engine.Command{Type: engine.CmdChoose, Color: c}, nil
	default:
		return engine.Command{}, fmt.Errorf("%w: %q", engine.ErrUnsupportedCommand, m.Type)
	}
}
