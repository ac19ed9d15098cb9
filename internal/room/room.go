package room

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
	"github.com/DoyleJ11/odd-one-out/internal/metrics"
)

var ErrClosed = errors.New("room closed")

type Msg interface{ isRoomMsg() }

// FromClient applies Cmd to the session. Reply, if set, must be buffered.
type FromClient struct {
	Cmd   engine.Command
	Reply chan Result
}

func (FromClient) isRoomMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isRoomMsg() {}

type Leave struct{ ClientID string }

func (Leave) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isRoomMsg() {}

type Snapshot struct {
	Version int
	Session engine.Session
}

type Result struct {
	Snapshot Snapshot
	Err      error
}

type View struct {
	Version    int
	NumClients int
	Session    engine.Session
}

// Room owns one game session. All access goes through its inbox so the
// engine and session are only ever touched by the loop goroutine.
type Room struct {
	inbox   chan Msg
	engine  *engine.Engine
	session engine.Session
	version int
	clients map[string]chan Snapshot
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	log     *zap.Logger
}

func New(parent context.Context, eng *engine.Engine, log *zap.Logger) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		inbox:   make(chan Msg, 64),
		engine:  eng,
		session: engine.NewEmptySession(),
		clients: make(map[string]chan Snapshot),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		log:     log,
	}

	go r.loop()
	return r
}

func (r *Room) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				r.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- r.snapshot()
				r.log.Debug("client joined", zap.String("client_id", msg.ClientID), zap.Int("clients", len(r.clients)))

			case Leave:
				if ch, ok := r.clients[msg.ClientID]; ok {
					close(ch)
					delete(r.clients, msg.ClientID)
				}

			case FromClient:
				events, next, err := r.engine.Apply(r.session, msg.Cmd)
				if err != nil {
					r.log.Debug("command rejected", zap.String("command", string(msg.Cmd.Type)), zap.Error(err))
					if msg.Reply != nil {
						msg.Reply <- Result{Snapshot: r.snapshot(), Err: err}
					}
					break
				}
				r.session = next
				r.version++
				metrics.ObserveEvents(events)
				r.logEvents(events)

				snap := r.snapshot()
				if msg.Reply != nil {
					msg.Reply <- Result{Snapshot: snap}
				}
				r.broadcast(snap)

			case GetState:
				msg.Reply <- View{
					Version:    r.version,
					NumClients: len(r.clients),
					Session:    r.session,
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) snapshot() Snapshot {
	return Snapshot{Version: r.version, Session: r.session}
}

func (r *Room) logEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EvtChoiceCorrect, engine.EvtChoiceWrong:
			r.log.Debug("choice resolved",
				zap.String("event", string(ev.Type)),
				zap.Stringer("color", ev.Color),
				zap.Float64("elapsed_seconds", ev.ElapsedSeconds),
				zap.Int("score", ev.Score))
		case engine.EvtSessionOver:
			r.log.Info("session over", zap.Int("score", ev.Score), zap.Int("version", r.version))
		}
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.clients {
		close(ch) // Tell client no more snapshots
		delete(r.clients, id)
	}
	r.cancel()
}

func (r *Room) broadcast(snap Snapshot) {
	for id, ch := range r.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(r.clients, id)
			r.log.Warn("dropped slow client", zap.String("client_id", id))
		}
	}
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

// Done is closed once the loop has exited.
func (r *Room) Done() <-chan struct{} { return r.done }

// Send delivers m unless the room has shut down or ctx ends first.
func (r *Room) Send(ctx context.Context, m Msg) error {
	select {
	case <-r.done:
		return ErrClosed
	default:
	}
	select {
	case r.inbox <- m:
		return nil
	case <-r.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do applies cmd and waits for the resulting snapshot. Engine errors come
// back alongside the unchanged snapshot.
func (r *Room) Do(ctx context.Context, cmd engine.Command) (Snapshot, error) {
	reply := make(chan Result, 1)
	if err := r.Send(ctx, FromClient{Cmd: cmd, Reply: reply}); err != nil {
		return Snapshot{}, err
	}
	select {
	case res := <-reply:
		return res.Snapshot, res.Err
	case <-r.done:
		return Snapshot{}, ErrClosed
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

func (r *Room) State(ctx context.Context) (View, error) {
	reply := make(chan View, 1)
	if err := r.Send(ctx, GetState{Reply: reply}); err != nil {
		return View{}, err
	}
	select {
	case v := <-reply:
		return v, nil
	case <-r.done:
		return View{}, ErrClosed
	case <-ctx.Done():
		return View{}, ctx.Err()
	}
}
