// Package handlers provides HTTP request handlers for the API endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/status-scheduler/statusd/internal/dispatch"
	"github.com/status-scheduler/statusd/internal/rules"
	"github.com/status-scheduler/statusd/internal/schedule"
	"github.com/status-scheduler/statusd/internal/status"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Accounts int    `json:"accounts"`
	Debug    bool   `json:"debug"`
}

// HealthCheck returns a handler that performs a health check.
func HealthCheck(version string, dispatcher *dispatch.Dispatcher, debug bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status:   "healthy",
			Version:  version,
			Accounts: len(dispatcher.Accounts()),
			Debug:    debug,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// StatusResponse represents the current status decision response.
type StatusResponse struct {
	Now           status.Decision  `json:"now"`
	LastApplied   *status.Decision `json:"last_applied,omitempty"`
	LastAppliedAt *time.Time       `json:"last_applied_at,omitempty"`
}

// CurrentStatus returns a handler reporting the decision that applies right
// now alongside the most recently dispatched one.
func CurrentStatus(resolver *status.Resolver, dispatcher *dispatch.Dispatcher, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := StatusResponse{
			Now: resolver.Resolve(time.Now().In(loc)),
		}
		if last, at, ok := dispatcher.LastApplied(); ok {
			response.LastApplied = &last
			response.LastAppliedAt = &at
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// scheduleEntry is one derived trigger in the schedule response.
type scheduleEntry struct {
	Days   []string `json:"days"`
	At     string   `json:"at"`
	Reason string   `json:"reason"`
}

// Schedule returns a handler listing the derived trigger set.
func Schedule(triggers []schedule.Trigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := make([]scheduleEntry, len(triggers))
		for i, t := range triggers {
			days := make([]string, len(t.Days))
			for j, d := range t.Days {
				days[j] = d.String()
			}
			entries[i] = scheduleEntry{
				Days:   days,
				At:     t.At.String(),
				Reason: t.Reason,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// accountEntry is one configured account in the accounts response.
type accountEntry struct {
	Name     string `json:"name"`
	TokenEnv string `json:"token_env"`
	Usable   bool   `json:"usable"`
}

// Accounts returns a handler listing the configured accounts and whether
// each one resolved a credential at startup.
func Accounts(specs []rules.AccountSpec, dispatcher *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usable := make(map[string]bool)
		for _, name := range dispatcher.Accounts() {
			usable[name] = true
		}

		entries := make([]accountEntry, len(specs))
		for i, spec := range specs {
			entries[i] = accountEntry{
				Name:     spec.Name,
				TokenEnv: spec.TokenEnv,
				Usable:   usable[spec.Name],
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}
