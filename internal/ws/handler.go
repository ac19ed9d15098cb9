package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/odd-one-out/internal/hub"
	"github.com/DoyleJ11/odd-one-out/internal/room"
	"github.com/DoyleJ11/odd-one-out/pkg/types"
)

const writeTimeout = 3 * time.Second

type Options struct {
	OriginPatterns []string
	IdleTimeout    time.Duration
	Log            *zap.Logger
}

func Handler(h *hub.Hub, opts Options) http.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = 5 * time.Minute
	}

	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		rm, err := h.Get(r.Context(), code)
		if errors.Is(err, hub.ErrClosed) {
			http.Error(w, "shutting down", http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			return
		}
		if rm == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: opts.OriginPatterns,
		})
		if err != nil {
			log.Warn("websocket accept", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		log := log.With(zap.String("code", code), zap.String("client_id", clientID))

		out := make(chan room.Snapshot, 8)
		if err := rm.Send(r.Context(), room.Join{ClientID: clientID, Outbox: out}); err != nil {
			conn.Close(websocket.StatusGoingAway, "session closed")
			return
		}
		defer func() { _ = rm.Send(context.Background(), room.Leave{ClientID: clientID}) }()
		log.Debug("websocket connected")

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		write := func(msg types.ServerMessage) error {
			payload, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
			defer cancel()
			return conn.Write(ctx, websocket.MessageText, payload)
		}
		go func() {
			for snap := range out {
				if err := write(SnapshotMessage(snap)); err != nil {
					log.Debug("write snapshot", zap.Error(err))
				}
			}
			// Outbox closed: room shut down or dropped us as slow.
			conn.Close(websocket.StatusGoingAway, "session closed")
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), idle)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					log.Debug("websocket read", zap.Error(err))
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = write(ErrorMessage(errors.New("bad json")))
				continue
			}

			cmd, err := ToEngineCommand(cm)
			if err != nil {
				_ = write(ErrorMessage(err))
				continue
			}

			// Successful commands are broadcast through out; only errors
			// need a direct reply.
			if _, err := rm.Do(r.Context(), cmd); err != nil {
				if errors.Is(err, room.ErrClosed) {
					return
				}
				_ = write(ErrorMessage(err))
			}
		}
	}
}
