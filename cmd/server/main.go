package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/hisaab/hisaab/internal/auth"
	"github.com/hisaab/hisaab/internal/config"
	"github.com/hisaab/hisaab/internal/handler"
	"github.com/hisaab/hisaab/internal/router"
	"github.com/hisaab/hisaab/internal/service"
	"github.com/hisaab/hisaab/internal/storage/sqlite"
	"github.com/hisaab/hisaab/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Format, cfg.Log.Level)

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.Database.Path)

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpireHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	logger := slog.Default()
	authService := service.NewAuthService(authenticator, jwtManager, logger)
	groupService := service.NewGroupService(store, logger)
	ledgerService := service.NewLedgerService(store, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engine := router.Setup(cfg, router.Deps{
		Auth:       handler.NewAuthHandler(authService),
		Groups:     handler.NewGroupHandler(groupService),
		Ledger:     handler.NewLedgerHandler(ledgerService),
		JWTManager: jwtManager,
		Registry:   registry,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("server starting", "address", addr)
	if err := engine.Run(addr); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
