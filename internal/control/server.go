package control

import (
	"context"
	"log/slog"
	"net"

	"github.com/clipstash/clipstash/internal/core"
	"github.com/clipstash/clipstash/internal/event"
)

// Server answers control requests from a running daemon.
//
// SELECT and TOGGLE are published onto the same event bus as watcher and
// hotkey events, so CLI-driven intents are serialized into the core's total
// order like every other producer. LIST and STATUS read the latest snapshot
// without entering the event stream.
type Server struct {
	bus     *event.Bus
	state   *event.Notifier[core.Snapshot]
	version string
}

// NewServer creates a Server.
func NewServer(bus *event.Bus, state *event.Notifier[core.Snapshot], version string) *Server {
	return &Server{bus: bus, state: state, version: version}
}

// Serve accepts connections until ctx is cancelled. Call in its own
// goroutine; it closes ln when ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) {
	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("control accept failed", "err", err)
			continue
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	cc := NewConn(conn)

	req, err := cc.ReadRequest()
	if err != nil {
		slog.Debug("control read failed", "err", err)
		return
	}

	switch req.Op {
	case OpList:
		snap := s.state.Latest()
		_ = cc.WriteResponse(&Response{
			OK:      true,
			Entries: snap.Entries,
			Visible: snap.Visible,
		})

	case OpSelect:
		s.bus.Publish(event.EntrySelected{Index: req.Index})
		slog.Debug("control: selection published", "index", req.Index)
		_ = cc.WriteResponse(&Response{OK: true})

	case OpToggle:
		s.bus.Publish(event.ToggleRequested{})
		slog.Debug("control: toggle published")
		_ = cc.WriteResponse(&Response{OK: true})

	case OpStatus:
		snap := s.state.Latest()
		_ = cc.WriteResponse(&Response{
			OK:      true,
			Version: s.version,
			Pending: s.bus.Pending(),
			History: len(snap.Entries),
		})

	default:
		_ = cc.WriteResponse(&Response{Err: "unknown op: " + string(req.Op)})
	}
}
