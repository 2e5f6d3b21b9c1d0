// Package dispatch fans a resolved status decision out to every connected
// account, isolating per-account failure.
package dispatch

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/status-scheduler/statusd/internal/status"
	"github.com/status-scheduler/statusd/internal/websocket"
)

// StatusAPI is the remote status-update capability an account exposes.
type StatusAPI interface {
	// SetProfile sets the status text, emoji and expiration (epoch
	// seconds, 0 for none).
	SetProfile(ctx context.Context, text, emoji string, expiresAt int64) error

	// SetPresence sets the presence state ("auto" or "away").
	SetPresence(ctx context.Context, presence string) error
}

// Account is a connected account with a usable credential.
type Account struct {
	Name string
	API  StatusAPI
}

// Result records the outcome of one account's push within a dispatch.
type Result struct {
	Account string
	Err     error
}

// Dispatcher pushes decisions to all accounts. It holds no mutable state
// beyond the last-applied record, so concurrent dispatches stay safe.
type Dispatcher struct {
	accounts    []Account
	debug       bool
	broadcaster *websocket.EventBroadcaster

	mu          sync.RWMutex
	last        status.Decision
	lastApplied time.Time
	hasLast     bool
}

// NewDispatcher creates a dispatcher over a fixed account list. In debug
// mode remote calls are suppressed and only the per-account log line runs.
func NewDispatcher(accounts []Account, debug bool, hub *websocket.Hub) *Dispatcher {
	var broadcaster *websocket.EventBroadcaster
	if hub != nil {
		broadcaster = websocket.NewEventBroadcaster(hub)
	}
	return &Dispatcher{
		accounts:    accounts,
		debug:       debug,
		broadcaster: broadcaster,
	}
}

// Accounts returns the names of the configured accounts.
func (d *Dispatcher) Accounts() []string {
	names := make([]string, len(d.accounts))
	for i, a := range d.accounts {
		names[i] = a.Name
	}
	return names
}

// Dispatch attempts to apply the decision to every account exactly once.
// Account pushes run concurrently; a failing account never prevents the
// others from being attempted. The returned results are in account order.
// The trigger names what caused the dispatch and rides along on the
// status.changed event.
func (d *Dispatcher) Dispatch(ctx context.Context, decision status.Decision, trigger string) []Result {
	results := make([]Result, len(d.accounts))

	var wg sync.WaitGroup
	for i, account := range d.accounts {
		wg.Add(1)
		go func(i int, account Account) {
			defer wg.Done()
			results[i] = Result{
				Account: account.Name,
				Err:     d.push(ctx, account, decision),
			}
		}(i, account)
	}
	wg.Wait()

	d.record(decision)

	for _, res := range results {
		if res.Err != nil {
			log.Printf("Failed to update status for account %s: %v", res.Account, res.Err)
			if d.broadcaster != nil {
				d.broadcaster.BroadcastDispatchError(res.Account, res.Err)
			}
		}
	}

	if d.broadcaster != nil {
		d.broadcaster.BroadcastStatusChanged(
			string(decision.Kind),
			decision.Text,
			decision.Emoji,
			string(decision.Presence),
			decision.ExpiresAt,
			trigger,
		)
	}

	return results
}

// push applies the decision to a single account.
func (d *Dispatcher) push(ctx context.Context, account Account, decision status.Decision) error {
	log.Printf("Account %s: %s %q (presence=%s, expires=%d)",
		account.Name, decision.Emoji, decision.Text, decision.Presence, decision.ExpirationEpoch())

	if d.debug {
		return nil
	}

	if err := account.API.SetProfile(ctx, decision.Text, decision.Emoji, decision.ExpirationEpoch()); err != nil {
		return err
	}
	return account.API.SetPresence(ctx, string(decision.Presence))
}

// record remembers the decision for the API surface.
func (d *Dispatcher) record(decision status.Decision) {
	d.mu.Lock()
	d.last = decision
	d.lastApplied = time.Now()
	d.hasLast = true
	d.mu.Unlock()
}

// LastApplied returns the most recently dispatched decision, if any.
func (d *Dispatcher) LastApplied() (status.Decision, time.Time, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.last, d.lastApplied, d.hasLast
}
