package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"torus-life/internal/logging"
	"torus-life/internal/sim"
	"torus-life/internal/stream"
)

// Server steps the world on a fixed ticker and exposes it over HTTP: a
// health check, a JSON status endpoint and a websocket snapshot stream.
type Server struct {
	world       *sim.World
	hub         *stream.Hub
	runID       string
	streamEvery int
	logger      *logging.Logger

	// mu serializes ticker steps against status reads. The render path in
	// the windowed binary has no such need since everything runs on the
	// game loop.
	mu sync.Mutex
}

// NewServer wires a world, a stream hub and a run identity together.
func NewServer(world *sim.World, hub *stream.Hub, runID string, streamEvery int, logger *logging.Logger) *Server {
	return &Server{
		world:       world,
		hub:         hub,
		runID:       runID,
		streamEvery: streamEvery,
		logger:      logger,
	}
}

// Routes registers the server's handlers on a mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.Handle("/ws", s.hub)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// statusResponse is the /status payload.
type statusResponse struct {
	RunID   string      `json:"run_id"`
	Clients int         `json:"clients"`
	Summary sim.Summary `json:"summary"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summary := s.world.Summary()
	s.mu.Unlock()

	resp := statusResponse{
		RunID:   s.runID,
		Clients: s.hub.ClientCount(),
		Summary: summary,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Errorf("status encode: %v", err)
	}
}

// RunLoop steps the simulation until the context is cancelled, broadcasting
// a snapshot frame every streamEvery ticks.
func (s *Server) RunLoop(ctx context.Context, tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.world.Step()
			tick := s.world.Tick()
			var snapshot []sim.Particle
			if tick%uint64(s.streamEvery) == 0 {
				snapshot = s.world.Snapshot()
			}
			s.mu.Unlock()

			if snapshot != nil {
				s.hub.Broadcast(stream.NewFrame(s.runID, tick, snapshot))
			}
		}
	}
}
