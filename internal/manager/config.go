package manager

import (
	"time"

	"github.com/rs/zerolog"

	"recommender/internal/catalog"
	"recommender/internal/llm"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	Generator llm.Generator
	// Catalog defaults to catalog.Default() when all lists are empty.
	Catalog catalog.Catalog
	// ModelID and Region are reported by Status only.
	ModelID    string
	Region     string
	SessionTTL time.Duration
	Logger     *zerolog.Logger
	Publisher  EventPublisher
	// Now is overridable for tests.
	Now func() time.Time
}

// NewWithConfig constructs a Manager from ManagerConfig.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		gen:      cfg.Generator,
		catalog:  cfg.Catalog,
		modelID:  cfg.ModelID,
		region:   cfg.Region,
		ttl:      cfg.SessionTTL,
		pub:      cfg.Publisher,
		now:      cfg.Now,
	}
	if len(m.catalog.Types) == 0 && len(m.catalog.Genres) == 0 && len(m.catalog.Moods) == 0 {
		m.catalog = catalog.Default()
	}
	if m.ttl <= 0 {
		m.ttl = defaultSessionTTL
	}
	if m.pub == nil {
		m.pub = noopPublisher{}
	}
	if m.now == nil {
		m.now = time.Now
	}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("component", "manager").Logger()
	} else {
		m.log = zerolog.Nop()
	}
	m.startTime = m.now()
	return m
}
