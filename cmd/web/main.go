package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vanta/internal/api"
	"vanta/internal/platform/config"
	"vanta/internal/platform/guard"
	"vanta/internal/platform/httpserver"
	"vanta/internal/platform/logger"
	"vanta/internal/platform/metrics"
	"vanta/internal/platform/redis"
	"vanta/internal/session"
	"vanta/internal/web"
)

// main wires dependencies and keeps the server lifecycle small. All screen
// logic lives in internal/web; all backend knowledge in internal/api.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	m := metrics.New()

	// Draft storage: redis when configured, in-process memory otherwise.
	var drafts session.DraftStore = session.NewMemoryDraftStore()
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connect", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		drafts = session.NewRedisDraftStore(redisClient.Client, cfg.DraftTTL)
		log.Info("draft store", "backend", "redis")
	} else {
		log.Info("draft store", "backend", "memory")
	}

	sessions := session.NewManager([]byte(cfg.SessionKey), cfg.TokenMaxAge, drafts)
	client := api.New(cfg.APIBaseURL, api.WithMetrics(m))

	handler, err := web.New(log, client, sessions, guard.New(), m, cfg)
	if err != nil {
		log.Error("init handler", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler.Router())

	srv := httpserver.New(cfg.Addr, mux)

	log.Info("starting vanta web", "addr", cfg.Addr, "api", cfg.APIBaseURL)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
