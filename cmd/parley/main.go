// Command parley runs the chat relay: an embedded single-page chat UI
// backed by a two-provider LLM relay.
//
// Configuration is via environment variables (a .env file is honored):
//
//	PARLEY_ADDR      - listen address (default: :8080)
//	PARLEY_DATA      - preference db path (default: parley.db; empty for
//	                   in-memory preferences)
//	PARLEY_LOG_LEVEL - debug, info, warn, or error (default: info)
//	PARLEY_GREETING  - override the assistant greeting
//
// The provider API key is not configured here; it is entered in the
// settings form and persisted in the preference db.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spetersoncode/parley/config"
	"github.com/spetersoncode/parley/logger"
	"github.com/spetersoncode/parley/prefs"
	"github.com/spetersoncode/parley/session"
	"github.com/spetersoncode/parley/web"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	var store prefs.Store
	if cfg.DataPath == "" {
		log.Warn("no data path configured, preferences will not survive restarts")
		store = prefs.NewMemoryStore()
	} else {
		bolt, err := prefs.OpenBolt(cfg.DataPath)
		if err != nil {
			log.Error("opening preference db failed", "error", err)
			os.Exit(1)
		}
		defer bolt.Close()
		store = bolt
	}

	conv := session.NewConversation(cfg.Greeting)
	sess := session.New(conv, store, session.WithLogger(log))
	srv := web.NewServer(sess, store, log)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // provider calls settle on their own schedule
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("parley listening", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
