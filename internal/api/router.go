// Package api provides HTTP routing and handlers for the observability API.
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/status-scheduler/statusd/internal/api/handlers"
	"github.com/status-scheduler/statusd/internal/api/middleware"
	"github.com/status-scheduler/statusd/internal/dispatch"
	"github.com/status-scheduler/statusd/internal/rules"
	"github.com/status-scheduler/statusd/internal/schedule"
	"github.com/status-scheduler/statusd/internal/status"
	"github.com/status-scheduler/statusd/internal/websocket"
)

// Deps carries everything the router's handlers read from.
type Deps struct {
	Version    string
	Debug      bool
	Location   *time.Location
	Rules      *rules.Config
	Resolver   *status.Resolver
	Dispatcher *dispatch.Dispatcher
	Triggers   []schedule.Trigger
	Hub        *websocket.Hub
}

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(deps Deps) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Resource not found")
	})

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handlers.HealthCheck(deps.Version, deps.Dispatcher, deps.Debug)).Methods("GET")
	api.HandleFunc("/status", handlers.CurrentStatus(deps.Resolver, deps.Dispatcher, deps.Location)).Methods("GET")
	api.HandleFunc("/schedule", handlers.Schedule(deps.Triggers)).Methods("GET")
	api.HandleFunc("/accounts", handlers.Accounts(deps.Rules.Accounts, deps.Dispatcher)).Methods("GET")
	api.HandleFunc("/ws", handlers.WebSocketUpgrade(deps.Hub)).Methods("GET")

	return r
}
