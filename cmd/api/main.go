package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkamau/warehouse-api/internal/config"
	"github.com/mkamau/warehouse-api/internal/db"
	httpx "github.com/mkamau/warehouse-api/internal/http"
	"github.com/mkamau/warehouse-api/internal/observability"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	// tracing is optional; without an endpoint we run untraced
	var tracerShutdown func(context.Context) error

	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(context.Background(), "warehouse-api", cfg.OTLPEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		tracerShutdown = shutdown
	}

	// connect to the document store before serving any request
	database, err := db.Connect(cfg.MongoURI, cfg.MongoDB)

	if err != nil {
		log.Error("store connection failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	// set up routers with the log
	router := httpx.NewRouter(log, cfg, prom, database)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// start server using a concurrent go-routine driven anonymous function.

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}

		if tracerShutdown != nil {
			err = tracerShutdown(ctx)

			if err != nil {
				log.Error("tracer shutdown failed", "err", err)
			}
		}

		err = database.Client().Disconnect(ctx)

		if err != nil {
			log.Error("store disconnect failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
