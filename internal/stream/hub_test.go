package stream

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"torus-life/internal/sim"
)

func TestHubCloseWithoutClients(t *testing.T) {
	h := NewHub(sim.NoOpLogger{})
	if err := h.Close(); err != nil {
		t.Errorf("Close returned %v", err)
	}
}

func TestBroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	h := NewHub(sim.NoOpLogger{})
	defer h.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Broadcast(Frame{RunID: "r", Tick: uint64(i)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked with no clients connected")
	}
}

func TestNewFrame(t *testing.T) {
	particles := []sim.Particle{
		{Kind: sim.KindBeta, X: 1.5, Y: 2.5},
		{Kind: sim.KindGamma, X: 3, Y: 4},
	}
	f := NewFrame("run-1", 9, particles)
	if f.RunID != "run-1" || f.Tick != 9 {
		t.Errorf("frame header = %q/%d, want run-1/9", f.RunID, f.Tick)
	}
	if len(f.Particles) != 2 {
		t.Fatalf("frame particles = %d, want 2", len(f.Particles))
	}
	if f.Particles[0] != (FrameParticle{Kind: 1, X: 1.5, Y: 2.5}) {
		t.Errorf("frame particle 0 = %+v", f.Particles[0])
	}
}

func TestClientReceivesBroadcastFrame(t *testing.T) {
	h := NewHub(sim.NoOpLogger{})
	defer h.Close()

	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// Registration goes through the hub's channel; wait for it to land.
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered, count = %d", h.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}

	sent := NewFrame("run-x", 3, []sim.Particle{{Kind: sim.KindAlpha, X: 7, Y: 8}})
	h.Broadcast(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Frame
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.RunID != "run-x" || got.Tick != 3 {
		t.Errorf("frame header = %q/%d, want run-x/3", got.RunID, got.Tick)
	}
	if len(got.Particles) != 1 || got.Particles[0] != (FrameParticle{Kind: 0, X: 7, Y: 8}) {
		t.Errorf("frame particles = %+v", got.Particles)
	}
}
