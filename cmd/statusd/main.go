// Package main is the entry point for the statusd presence scheduler daemon.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/status-scheduler/statusd/internal/api"
	"github.com/status-scheduler/statusd/internal/dispatch"
	"github.com/status-scheduler/statusd/internal/rules"
	"github.com/status-scheduler/statusd/internal/schedule"
	"github.com/status-scheduler/statusd/internal/slack"
	"github.com/status-scheduler/statusd/internal/status"
	"github.com/status-scheduler/statusd/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
// Defaults to "dev" when not provided.
var version = "dev"

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "rules.yaml", "Path to the rule configuration file")
	addr := flag.String("addr", ":8077", "HTTP server address")
	debugFlag := flag.Bool("debug", false, "Log decisions without calling the remote API")
	once := flag.Bool("once", false, "Resolve and dispatch once, then exit")
	flag.Parse()

	// Best-effort .env loading; a missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	// Allow overriding version via environment (e.g., injected at build time)
	if envVer := os.Getenv("VERSION"); envVer != "" {
		version = envVer
	}

	debug := *debugFlag || isTruthy(os.Getenv("STATUS_DEBUG"))

	log.Printf("Starting statusd (version: %s, debug: %v)...", version, debug)

	// Load and validate the rule configuration
	cfg, err := rules.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load rule config: %v", err)
	}
	loc := cfg.Location()
	log.Printf("Loaded rules from %s (timezone: %s)", *configPath, loc)

	// Build the account list; startup fails if no credential resolves
	accounts, err := dispatch.BuildAccounts(cfg.Accounts, func(token string) dispatch.StatusAPI {
		return slack.NewClient(slack.DefaultConfig(token))
	})
	if err != nil {
		log.Fatalf("Failed to build accounts: %v", err)
	}
	log.Printf("Connected accounts: %d", len(accounts))

	// Assemble the decision core
	selector := status.NewSelector(cfg, status.Strategy(cfg.EmojiStrategy))
	resolver := status.NewResolver(cfg, selector)

	hub := websocket.NewHub()
	dispatcher := dispatch.NewDispatcher(accounts, debug, hub)

	apply := func(reason string) {
		now := time.Now().In(loc)
		decision := resolver.Resolve(now)
		log.Printf("Trigger %s: resolved %s", reason, decision.Kind)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		dispatcher.Dispatch(ctx, decision, reason)
	}

	// Apply the current status once at startup
	apply("startup")

	if *once {
		return
	}

	// Derive triggers and start the cron runner
	triggers := schedule.Derive(cfg)
	runner := schedule.NewRunner(triggers, loc, func(t schedule.Trigger) {
		apply(t.Reason)
	})
	runner.Start()

	// Observability API
	router := api.NewRouter(api.Deps{
		Version:    version,
		Debug:      debug,
		Location:   loc,
		Rules:      cfg,
		Resolver:   resolver,
		Dispatcher: dispatcher,
		Triggers:   triggers,
		Hub:        hub,
	})

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		log.Printf("Server listening on %s", *addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	runner.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Stopped")
}

// isTruthy interprets a boolean-ish environment value.
func isTruthy(s string) bool {
	switch s {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}
