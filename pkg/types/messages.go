package types

// Client -> Server
// Start: {}
// Restart: {}
// Stop: {}
// Choose:
//   color: "#RRGGBB"
//
// Server -> Client
// StateSnapshot:
//   version: number
//   state: SessionView
//
// Error:
//   error: string

type ClientMessage struct {
	Type  string `json:"type"` // "Start" | "Restart" | "Stop" | "Choose"
	Color string `json:"color,omitempty"`
}

type ServerMessage struct {
	Type    string       `json:"type"` // "StateSnapshot" | "Error"
	Version int          `json:"version"`
	State   *SessionView `json:"state,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type CreateSessionResponse struct {
	Code string `json:"code"`
}

type ChoiceRequest struct {
	Color string `json:"color"`
}
