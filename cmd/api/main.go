package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"baccarat-ev/internal/application/session"
	"baccarat-ev/internal/infra/memory"
	"baccarat-ev/internal/infrastructure/config"
	httpapi "baccarat-ev/internal/interface/http"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (HTTP_ADDR=%s)", cfg.HTTP.Addr)
	rules := cfg.Rules.OutcomeRules()
	log.Printf("rules banker_payout=%.2f player_payout=%.2f min_win_rate=%.2f", rules.BankerPayout, rules.PlayerPayout, rules.MinWinRate)

	// 檢查 web 目錄是否存在
	if _, err := os.Stat(cfg.UI.WebDir); os.IsNotExist(err) {
		log.Printf("warning: web directory %q not found", cfg.UI.WebDir)
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := memory.NewStore()
	sessions := session.NewService(store, rules)
	sweeper := session.NewSweeper(store, cfg.Session.IdleTTL, cfg.Session.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	apiServer := httpapi.NewServer(cfg, sessions)
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: apiServer.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting HTTP server on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
