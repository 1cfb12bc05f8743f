// Package stream broadcasts simulation snapshots to websocket clients, as a
// headless alternative to the windowed renderer.
package stream

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"torus-life/internal/sim"
)

// FrameParticle is one particle inside a Frame.
type FrameParticle struct {
	Kind int     `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Frame is one tick's snapshot as sent to clients.
type Frame struct {
	RunID     string          `json:"run_id"`
	Tick      uint64          `json:"tick"`
	Particles []FrameParticle `json:"particles"`
}

// NewFrame builds a Frame from a world snapshot.
func NewFrame(runID string, tick uint64, particles []sim.Particle) Frame {
	f := Frame{
		RunID:     runID,
		Tick:      tick,
		Particles: make([]FrameParticle, len(particles)),
	}
	for i, p := range particles {
		f.Particles[i] = FrameParticle{Kind: int(p.Kind), X: p.X, Y: p.Y}
	}
	return f
}

// Hub fans frames out to all connected websocket clients. A single
// broadcaster goroutine owns the client set; registration, removal and
// frames all go through channels.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Frame
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
	upgrader   websocket.Upgrader
	count      atomic.Int64
	log        sim.Logger
}

// NewHub creates a hub and starts its broadcaster goroutine.
func NewHub(log sim.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Frame, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			h.count.Store(int64(len(h.clients)))
			h.log.Infof("stream client connected: %s (%d total)", conn.RemoteAddr(), len(h.clients))
		case conn := <-h.unregister:
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.count.Store(int64(len(h.clients)))
		case frame := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(frame); err != nil {
					h.log.Warnf("stream write failed, dropping client %s: %v", conn.RemoteAddr(), err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.count.Store(int64(len(h.clients)))
		case <-h.done:
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = nil
			h.count.Store(0)
			return
		}
	}
}

// Broadcast queues a frame for delivery. Frames are dropped when the queue
// is full so a slow client set never stalls the tick loop.
func (h *Hub) Broadcast(f Frame) {
	select {
	case h.broadcast <- f:
	case <-h.done:
	default:
		h.log.Debugf("stream queue full, dropping frame tick=%d", f.Tick)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// ServeHTTP upgrades the request to a websocket and registers the client.
// The read loop exists only to notice the peer going away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("stream upgrade failed: %v", err)
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case h.unregister <- conn:
				case <-h.done:
				}
				return
			}
		}
	}()
}

// Close disconnects all clients and stops the broadcaster.
func (h *Hub) Close() error {
	close(h.done)
	h.wg.Wait()
	return nil
}
