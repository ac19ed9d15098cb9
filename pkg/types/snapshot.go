package types

// SessionView:
//   status: "not_started" | "in_progress" | "over"
//   score: number
//   options: string[4] // swatch colors, empty unless in_progress
//   last_reaction_time: number | null
//   reaction_times: number[]
//   result: GameOver // only when over
//
// The odd color is never sent; the client only learns it was right from the score.

type SessionView struct {
	Status           string    `json:"status"`
	Score            int       `json:"score"`
	Options          []string  `json:"options"`
	LastReactionTime *float64  `json:"last_reaction_time"`
	ReactionTimes    []float64 `json:"reaction_times"`
	Result           *GameOver `json:"result,omitempty"`
}

type GameOver struct {
	FinalScore          int      `json:"final_score"`
	AverageReactionTime *float64 `json:"average_reaction_time"`
	Comparison          string   `json:"comparison,omitempty"` // "faster" | "equal" | "slower"
	Message             string   `json:"message,omitempty"`
}
