package hub

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
	"github.com/DoyleJ11/odd-one-out/internal/metrics"
	"github.com/DoyleJ11/odd-one-out/internal/room"
)

var ErrClosed = errors.New("hub closed")

type HubMsg interface{ isHubMsg() }

// CreateRoom returns the existing room if Code is taken.
type CreateRoom struct {
	Code  string
	Reply chan *room.Room
}

type GetRoom struct {
	Code  string
	Reply chan *room.Room
}

// EnsureRoom replies nil if a fresh engine could not be built.
type EnsureRoom struct {
	Code  string
	Reply chan *room.Room
}

type RemoveRoom struct {
	Code string
}

type CountRooms struct {
	Reply chan int
}

type ShutdownHub struct{}

func (CreateRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (EnsureRoom) isHubMsg()  {}
func (RemoveRoom) isHubMsg()  {}
func (CountRooms) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

// EngineFactory builds one engine per room so no PRNG is shared.
type EngineFactory func() (*engine.Engine, error)

type Hub struct {
	inbox     chan HubMsg
	rooms     map[string]*room.Room
	newEngine EngineFactory
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	log       *zap.Logger
}

func NewHub(parent context.Context, newEngine EngineFactory, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:     make(chan HubMsg, 64),
		rooms:     make(map[string]*room.Room),
		newEngine: newEngine,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		log:       log,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Done is closed once the loop has exited.
func (h *Hub) Done() <-chan struct{} { return h.done }

// Send delivers m unless the hub has shut down or ctx ends first.
func (h *Hub) Send(ctx context.Context, m HubMsg) error {
	select {
	case <-h.done:
		return ErrClosed
	default:
	}
	select {
	case h.inbox <- m:
		return nil
	case <-h.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns the room for code, or nil if there is none.
func (h *Hub) Get(ctx context.Context, code string) (*room.Room, error) {
	reply := make(chan *room.Room, 1)
	return h.await(ctx, GetRoom{Code: code, Reply: reply}, reply)
}

// Ensure returns the room for code, creating it if needed. A nil room with
// a nil error means the engine factory failed.
func (h *Hub) Ensure(ctx context.Context, code string) (*room.Room, error) {
	reply := make(chan *room.Room, 1)
	return h.await(ctx, EnsureRoom{Code: code, Reply: reply}, reply)
}

func (h *Hub) await(ctx context.Context, m HubMsg, reply <-chan *room.Room) (*room.Room, error) {
	if err := h.Send(ctx, m); err != nil {
		return nil, err
	}
	select {
	case rm := <-reply:
		return rm, nil
	case <-h.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Hub) loop() {
	defer close(h.done)
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				msg.Reply <- h.ensure(msg.Code)

			case GetRoom:
				msg.Reply <- h.rooms[msg.Code] // May be nil

			case EnsureRoom:
				msg.Reply <- h.ensure(msg.Code)

			case RemoveRoom:
				if rm := h.rooms[msg.Code]; rm != nil {
					_ = rm.Send(context.Background(), room.Shutdown{})
					delete(h.rooms, msg.Code)
					metrics.ActiveRooms.Set(float64(len(h.rooms)))
					h.log.Info("room removed", zap.String("code", msg.Code))
				}

			case CountRooms:
				msg.Reply <- len(h.rooms)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) ensure(code string) *room.Room {
	if rm := h.rooms[code]; rm != nil {
		return rm
	}
	eng, err := h.newEngine()
	if err != nil {
		h.log.Error("build engine", zap.String("code", code), zap.Error(err))
		return nil
	}
	rm := room.New(h.ctx, eng, h.log.With(zap.String("room", code)))
	h.rooms[code] = rm
	metrics.ActiveRooms.Set(float64(len(h.rooms)))
	h.log.Info("room created", zap.String("code", code))
	return rm
}

func (h *Hub) shutdown() {
	for _, rm := range h.rooms {
		// ErrClosed when the room already stopped on the same cancellation
		_ = rm.Send(context.Background(), room.Shutdown{})
	}
	clear(h.rooms)
	metrics.ActiveRooms.Set(0)
	h.cancel()
}
