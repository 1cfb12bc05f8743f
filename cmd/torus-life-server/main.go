package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"torus-life/internal/logging"
	"torus-life/internal/sim"
	"torus-life/internal/stream"
)

func main() {
	opts, err := loadOptions()
	if err != nil {
		logging.New("error").Fatalf("configuration: %v", err)
	}
	logger := logging.New(opts.LogLevel)

	world, err := sim.NewWorldWithLogger(opts.simConfig(), logger)
	if err != nil {
		logger.Fatalf("world: %v", err)
	}

	runID := uuid.NewString()[:8]
	hub := stream.NewHub(logger)
	defer hub.Close()

	srv := NewServer(world, hub, runID, opts.StreamEvery, logger)
	mux := http.NewServeMux()
	srv.Routes(mux)

	httpSrv := &http.Server{
		Addr:    opts.Addr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.RunLoop(ctx, opts.TPS)

	go func() {
		logger.Infof("run %s listening on %s (tps=%d)", runID, opts.Addr, opts.TPS)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("http server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
