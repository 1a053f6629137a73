package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sparcom/portal/config"
	"github.com/sparcom/portal/internal/api"
	"github.com/sparcom/portal/internal/core"
	"github.com/sparcom/portal/internal/logger"
	"github.com/sparcom/portal/internal/session"
	"github.com/sparcom/portal/internal/web"
)

func main() {
	// Handle Ctrl+C / SIGTERM for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config: %v", err)
		os.Exit(1)
	}

	// Session store: sqlite when a path is configured, memory otherwise.
	var store session.Store
	if cfg.DBPath != "" {
		s, err := session.OpenSQLiteStore(cfg.DBPath)
		if err != nil {
			logger.Errorf("open session store: %v", err)
			os.Exit(1)
		}
		store = s
		logger.Infof("sessions persisted at %s", cfg.DBPath)
	} else {
		store = session.NewMemoryStore()
		logger.Infof("sessions kept in memory")
	}
	defer store.Close()

	sessions := session.NewManager(store, cfg.SecureCookies)

	// HTTP clients to the serverless functions that own the business logic.
	apiTimeout := 10 * time.Second
	authAPI := api.NewAuthClient(cfg.AuthAPIURL, apiTimeout)
	eventsAPI := api.NewCatalogClient(cfg.EventsAPIURL, apiTimeout)
	rolesAPI := api.NewRoleClient(cfg.RolesAPIURL, apiTimeout)
	telegramAPI := api.NewTelegramClient(cfg.TelegramAPIURL, cfg.TelegramBot, apiTimeout)

	authSvc := core.NewAuthService(authAPI, sessions)
	telegramSvc := core.NewTelegramService(telegramAPI, sessions)

	ui := web.New(authSvc, telegramSvc, eventsAPI, rolesAPI, sessions)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      ui.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Infof("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
	logger.Infof("server stopped")
}
