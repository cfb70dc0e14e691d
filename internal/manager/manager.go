package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"recommender/internal/catalog"
	"recommender/internal/llm"
)

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	gen      llm.Generator
	catalog  catalog.Catalog
	modelID  string
	region   string
	ttl      time.Duration
	log      zerolog.Logger
	pub      EventPublisher
	now      func() time.Time

	// counters reported by Status
	inflight       int
	submitsOK      uint64
	submitsFailed  uint64
	evictionsTotal uint64
	lastErr        string
	startTime      time.Time
}

// New constructs a Manager with default catalog and session TTL.
func New(gen llm.Generator, modelID, region string) *Manager {
	return NewWithConfig(ManagerConfig{
		Generator: gen,
		ModelID:   modelID,
		Region:    region,
	})
}

// Ready reports whether a generator is configured.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen != nil
}

// Options returns a copy of the option catalog.
func (m *Manager) Options() catalog.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return catalog.Catalog{
		Types:  append([]string(nil), m.catalog.Types...),
		Genres: append([]string(nil), m.catalog.Genres...),
		Moods:  append([]string(nil), m.catalog.Moods...),
	}
}
