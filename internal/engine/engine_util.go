package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/DoyleJ11/odd-one-out/internal/clock"
)

func NewEmptySession() Session {
	return Session{
		Status:        StatusNotStarted,
		ReactionTimes: []float64{},
	}
}

// NewSeeded returns an engine on the real clock with a PCG source seeded
// from crypto/rand.
func NewSeeded() (*Engine, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	src := rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
	return New(rand.New(src), clock.Real{}), nil
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

// LastReactionTime reports the most recent recorded time, if any.
func (s Session) LastReactionTime() (float64, bool) {
	if len(s.ReactionTimes) == 0 {
		return 0, false
	}
	return s.ReactionTimes[len(s.ReactionTimes)-1], true
}
