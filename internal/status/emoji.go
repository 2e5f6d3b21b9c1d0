package status

import (
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"github.com/status-scheduler/statusd/internal/rules"
)

// Strategy selects how an emoji is picked from a kind's candidate set.
type Strategy string

const (
	// StrategyPerCall rerolls on every pick, so the emoji may change
	// between trigger firings within a day.
	StrategyPerCall Strategy = "per-call"

	// StrategyDaily derives the pick from the calendar date, so it is
	// stable for a whole day and changes the next.
	StrategyDaily Strategy = "daily"
)

// Selector picks one emoji from a kind's candidate set. Configured lists
// take priority; kinds without a configured list use the built-in defaults.
// Safe for concurrent use: trigger firings and API requests share one
// selector, and *rand.Rand is not goroutine-safe on its own.
type Selector struct {
	lists    map[string][]string
	strategy Strategy

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector builds a selector over the config's emoji lists.
func NewSelector(cfg *rules.Config, strategy Strategy) *Selector {
	return NewSelectorSeeded(cfg, strategy, time.Now().UnixNano())
}

// NewSelectorSeeded is NewSelector with a fixed random seed, for
// deterministic tests of the per-call strategy.
func NewSelectorSeeded(cfg *rules.Config, strategy Strategy, seed int64) *Selector {
	if strategy == "" {
		strategy = StrategyPerCall
	}
	var lists map[string][]string
	if cfg != nil {
		lists = cfg.Emojis
	}
	return &Selector{
		lists:    lists,
		strategy: strategy,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Pick returns the emoji to use for the given kind at the given instant.
// The instant only matters for the daily strategy.
func (s *Selector) Pick(kind Kind, at time.Time) string {
	candidates := s.lists[string(kind)]
	if len(candidates) == 0 {
		candidates = defaultEmojis[kind]
	}
	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	switch s.strategy {
	case StrategyDaily:
		h := fnv.New32a()
		h.Write([]byte(at.Format("2006-01-02")))
		h.Write([]byte(kind))
		return candidates[h.Sum32()%uint32(len(candidates))]
	default:
		s.mu.Lock()
		idx := s.rng.Intn(len(candidates))
		s.mu.Unlock()
		return candidates[idx]
	}
}
