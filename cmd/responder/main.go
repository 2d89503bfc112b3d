package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/jackwilsdon/responder/config"
	"github.com/jackwilsdon/responder/logkit"
	"github.com/jackwilsdon/responder/observability"
	"github.com/jackwilsdon/responder/server"
	"github.com/jackwilsdon/responder/server/endpoint"
	"github.com/jackwilsdon/responder/version"
)

const serviceName = "responder"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	var cfg config.ServiceConfig
	if err := config.Load(serviceName, &cfg); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logs := logkit.New(cfg.Logging)
	logkit.SetDefault(logs)
	log := logkit.For(serviceName)

	log.Infof("starting %s %s (%s)", serviceName, version.Short(), cfg.Environment)

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	providers, err := observability.Init(ctx, cfg.Observability, logs)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			log.LogError(err)
		}
	}()

	var metrics *observability.Metrics
	if cfg.Observability.Enabled {
		metrics, err = observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			return fmt.Errorf("creating metrics: %w", err)
		}
	}

	srv := server.New(cfg.Server, logs)
	srv.ApplyMiddleware(logs, metrics)

	endpoint.NewEcho(logs).Register(srv.Engine())
	srv.Engine().GET("/health", endpoint.Health(cfg.Name))
	srv.Engine().GET("/version", endpoint.Version())
	srv.Engine().NoRoute(endpoint.NoRoute())

	if err := srv.Start(ctx); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Infof("received %s, shutting down", sig)

	if err := srv.Stop(ctx); err != nil {
		log.LogError(err)
		return err
	}
	return nil
}
