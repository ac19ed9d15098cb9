package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
	"github.com/DoyleJ11/odd-one-out/internal/hub"
	"github.com/DoyleJ11/odd-one-out/internal/room"
	"github.com/DoyleJ11/odd-one-out/internal/ws"
	"github.com/DoyleJ11/odd-one-out/pkg/types"
)

const codeLength = 6

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, codeLength)
	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

type handlers struct {
	hub *hub.Hub
	log *zap.Logger
}

func (hs handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var code string
	for {
		c, err := GenerateCode()
		if err != nil {
			hs.log.Error("generate code", zap.Error(err))
			http.Error(w, "failed to generate code", http.StatusInternalServerError)
			return
		}
		existing, err := hs.hub.Get(r.Context(), c)
		if err != nil {
			hs.writeError(w, err)
			return
		}
		if existing == nil {
			code = c
			break
		}
		hs.log.Debug("collision on code, regenerating", zap.String("code", c))
	}

	rm, err := hs.hub.Ensure(r.Context(), code)
	if err != nil {
		hs.writeError(w, err)
		return
	}
	if rm == nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, types.CreateSessionResponse{Code: code})
}

func (hs handlers) lookup(w http.ResponseWriter, r *http.Request) *room.Room {
	rm, err := hs.hub.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		hs.writeError(w, err)
		return nil
	}
	if rm == nil {
		http.Error(w, "session not found", http.StatusNotFound)
	}
	return rm
}

func (hs handlers) getSession(w http.ResponseWriter, r *http.Request) {
	rm := hs.lookup(w, r)
	if rm == nil {
		return
	}
	view, err := rm.State(r.Context())
	if err != nil {
		hs.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ws.SnapshotMessage(room.Snapshot{Version: view.Version, Session: view.Session}))
}

func (hs handlers) lifecycle(cmd engine.CommandType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := hs.lookup(w, r)
		if rm == nil {
			return
		}
		hs.apply(w, r, rm, engine.Command{Type: cmd})
	}
}

func (hs handlers) choose(w http.ResponseWriter, r *http.Request) {
	rm := hs.lookup(w, r)
	if rm == nil {
		return
	}
	var req types.ChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	c, err := engine.ParseColor(req.Color)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hs.apply(w, r, rm, engine.Command{Type: engine.CmdChoose, Color: c})
}

func (hs handlers) apply(w http.ResponseWriter, r *http.Request, rm *room.Room, cmd engine.Command) {
	snap, err := rm.Do(r.Context(), cmd)
	if err != nil {
		hs.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ws.SnapshotMessage(snap))
}

func (hs handlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	if hs.lookup(w, r) == nil {
		return
	}
	if err := hs.hub.Send(r.Context(), hub.RemoveRoom{Code: chi.URLParam(r, "code")}); err != nil {
		hs.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hs handlers) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrNoActiveRound), errors.Is(err, engine.ErrNotInProgress):
		writeJSON(w, http.StatusConflict, ws.ErrorMessage(err))
	case errors.Is(err, engine.ErrUnsupportedCommand), errors.Is(err, engine.ErrInvalidColor):
		writeJSON(w, http.StatusBadRequest, ws.ErrorMessage(err))
	case errors.Is(err, room.ErrClosed):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, hub.ErrClosed):
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
	default:
		hs.log.Error("session command", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
