// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package traceserver streams a running cpu.CPU's per-instruction results
// to connected websocket clients, for building an external register/trace
// viewer without embedding it in the emulator process itself.
package traceserver

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/sharkeymike/emu816go/hardware/cpu"
	"github.com/sharkeymike/emu816go/logger"
)

// Server accepts websocket connections and broadcasts trace frames to all
// of them. The zero value is not usable; construct with NewServer.
type Server struct {
	upgrader websocket.Upgrader
	log      *logger.Logger

	mu      sync.Mutex
	clients map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates a Server. log may be nil, in which case connection and
// send errors are silently discarded.
func NewServer(log *logger.Logger) *Server {
	return &Server{
		clients: make(map[*client]bool),
		log:     log,
	}
}

// Handler returns the http.HandlerFunc that upgrades a request to a
// websocket connection and registers it to receive trace frames. Mount it
// at whatever path the caller likes:
//
//	http.HandleFunc("/trace", srv.Handler())
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logf("upgrade failed: %v", err)
			return
		}
		c := &client{conn: conn, send: make(chan []byte, 64)}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()

		s.logf("client connected from %s", r.RemoteAddr)
		go s.serveClient(c)
	}
}

// serveClient drains c.send to the socket until either the connection is
// closed by the remote end or a write fails. Trace clients aren't expected
// to send anything back; incoming messages are read and discarded purely
// to notice a closed connection promptly.
func (s *Server) serveClient(c *client) {
	defer s.remove(c)
	defer c.conn.Close()

	go func() {
		for {
			if _, _, err := c.conn.ReadMessage(); err != nil {
				c.conn.Close()
				return
			}
		}
	}()

	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			s.logf("write failed: %v", err)
			return
		}
	}
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients[c] {
		delete(s.clients, c)
		close(c.send)
	}
	s.logf("client disconnected")
}

// Broadcast encodes mc's most recent Step result and the register file it
// left behind, and queues it for every connected client. A client whose
// send buffer is full is dropped rather than allowed to stall the CPU loop.
func (s *Server) Broadcast(mc *cpu.CPU) {
	frame := encodeFrame(mc)

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- frame:
		default:
			delete(s.clients, c)
			close(c.send)
			s.logf("client dropped: send buffer full")
		}
	}
}

func (s *Server) logf(pattern string, args ...interface{}) {
	if s.log != nil {
		s.log.Logf(logger.Allow, "traceserver", pattern, args...)
	}
}

// ListenAndServe mounts Handler at path and blocks serving HTTP on addr, in
// the style of a standalone trace endpoint. Most embedders will want to
// call Handler themselves and mount it alongside other routes instead.
func (s *Server) ListenAndServe(addr, path string) error {
	mux := http.NewServeMux()
	mux.HandleFunc(path, s.Handler())
	s.logf("listening on %s%s", addr, path)
	return http.ListenAndServe(addr, mux)
}
