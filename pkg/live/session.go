package live

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/dashwire-dev/dashwire/pkg/layout"
	"github.com/dashwire-dev/dashwire/pkg/middleware"
)

const (
	// defaultPongWait bounds how long a session waits for any traffic from
	// the client, including pong replies to the heartbeat.
	defaultPongWait = 60 * time.Second

	// defaultPingPeriod is how often the heartbeat pings the client. Must be
	// shorter than the pong wait so an idle but healthy connection always
	// answers in time.
	defaultPingPeriod = 54 * time.Second

	// writeWait bounds a single control-frame write.
	writeWait = 10 * time.Second
)

// Session owns one websocket connection and the scene behind it. All events
// for a session are processed on a single goroutine, strictly in arrival
// order; each event runs to completion - handler, cell propagation, patch
// collection - before the next one is taken.
//
// A heartbeat goroutine sends websocket control pings so an idle dashboard
// keeps its session: browsers answer control pings automatically, and each
// pong extends the read deadline.
type Session struct {
	id       string
	scene    *layout.Scene
	conn     *websocket.Conn
	dispatch middleware.Dispatch
	log      zerolog.Logger

	events chan Frame
	done   chan struct{}

	pongWait   time.Duration
	pingPeriod time.Duration

	writeMu   sync.Mutex
	closeOnce sync.Once
	onClose   func(*Session)
}

// NewSession wraps a connection and scene into a session. The middlewares
// wrap the scene's dispatch (metrics, tracing).
func NewSession(conn *websocket.Conn, scene *layout.Scene, log zerolog.Logger, mws ...middleware.Middleware) *Session {
	id := uuid.NewString()
	return &Session{
		id:         id,
		scene:      scene,
		conn:       conn,
		dispatch:   middleware.Chain(scene.Dispatch, mws...),
		log:        log.With().Str("session", id).Logger(),
		events:     make(chan Frame, 64),
		done:       make(chan struct{}),
		pongWait:   defaultPongWait,
		pingPeriod: defaultPingPeriod,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Start runs the heartbeat, event, and read loops. It blocks until the
// connection closes or the session is shut down.
func (s *Session) Start() {
	go s.pingLoop()
	go s.eventLoop()
	s.readLoop()
}

// pingLoop sends periodic control pings so idle connections stay open.
func (s *Session) pingLoop() {
	ticker := time.NewTicker(s.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			s.writeMu.Unlock()
			if err != nil {
				s.log.Debug().Err(err).Msg("ping failed")
				return
			}
		case <-s.done:
			return
		}
	}
}

// readLoop reads frames from the connection and queues events for the
// event loop. Any inbound traffic - data frames or heartbeat pongs -
// extends the read deadline.
func (s *Session) readLoop() {
	defer s.Close()

	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.pongWait))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.log.Error().Err(err).Msg("read error")
			}
			return
		}

		frame, err := DecodeFrame(msg)
		if err != nil {
			s.log.Warn().Err(err).Msg("dropping malformed frame")
			continue
		}

		switch frame.Type {
		case FrameEvent:
			select {
			case s.events <- frame:
			case <-s.done:
				return
			}
		case FramePing:
			s.writeFrame(Frame{Type: FramePong})
		default:
			s.log.Warn().Str("type", string(frame.Type)).Msg("unexpected frame type")
		}
	}
}

// eventLoop processes queued events one at a time. Patches produced by an
// event are sent before the next event is dispatched, preserving the
// per-event ordering guarantee.
func (s *Session) eventLoop() {
	for {
		select {
		case frame := <-s.events:
			s.handleEvent(frame)
		case <-s.done:
			return
		}
	}
}

// handleEvent dispatches one activation event and flushes its patches.
func (s *Session) handleEvent(frame Frame) {
	if err := s.dispatch(frame.Ref, frame.Event); err != nil {
		s.log.Warn().
			Err(err).
			Str("ref", frame.Ref).
			Str("event", frame.Event).
			Msg("dispatch failed")
		s.writeFrame(Frame{Type: FrameError, Ref: frame.Ref, Message: err.Error()})
		return
	}

	patches := s.scene.DrainPatches()
	if len(patches) == 0 {
		return
	}
	s.writeFrame(Frame{Type: FramePatch, Patches: patches})
}

// writeFrame serializes and sends a frame. Writes are serialized; gorilla
// connections do not allow concurrent writers.
func (s *Session) writeFrame(frame Frame) {
	data, err := frame.Encode()
	if err != nil {
		s.log.Error().Err(err).Msg("frame encode error")
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.log.Debug().Err(err).Msg("write error")
	}
}

// Close shuts the session down: the scene's bindings are disposed and the
// connection is closed. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.scene.Close()
		s.conn.Close()
		if s.onClose != nil {
			s.onClose(s)
		}
		s.log.Debug().Msg("session closed")
	})
}
