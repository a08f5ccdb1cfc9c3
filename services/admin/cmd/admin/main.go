package main

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/expert-platform/internal/platform/auth"
	"github.com/example/expert-platform/internal/platform/config"
	"github.com/example/expert-platform/internal/platform/httpserver"
	"github.com/example/expert-platform/internal/platform/logging"
	"github.com/example/expert-platform/internal/platform/run"
	adminconfig "github.com/example/expert-platform/services/admin/internal/config"
	adminhandlers "github.com/example/expert-platform/services/admin/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	adminCfg, err := adminconfig.LoadAdmin()
	if err != nil {
		log.Error("load admin config", zap.Error(err))
		run.Exit(1)
	}

	r := chi.NewRouter()
	httpserver.SetupRouter(r)

	verifier := auth.JWTVerifier{Secret: adminCfg.JWTSecret}
	gate := auth.NewGate(log.Named("admin_gate"))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(verifier))
		adminhandlers.Routes(r, gate)
	})

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, ServiceName: cfg.ServiceName, Logger: log, Router: r})

	runner := run.New(log, cfg.HTTP.ShutdownTimeout)
	code := runner.WithSignals(srv.Start, srv.Shutdown)

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}
