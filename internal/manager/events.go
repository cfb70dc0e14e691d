package manager

// Event represents a session lifecycle event.
// Names: session_created, session_reset, session_evicted, submit_start, submit_ok, submit_failed.
type Event struct {
	Name      string
	SessionID string
	Fields    map[string]any
}

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish is called with the manager lock held.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// LogPublisher writes events to the manager's logger at debug level.
type LogPublisher struct{ m *Manager }

// NewLogPublisher returns a publisher that logs through m once installed with SetPublisher.
func NewLogPublisher(m *Manager) LogPublisher { return LogPublisher{m: m} }

func (p LogPublisher) Publish(e Event) {
	ev := p.m.log.Debug().Str("event", e.Name).Str("session", e.SessionID)
	for k, v := range e.Fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg("session event")
}

// SetPublisher replaces the event publisher. nil restores the no-op default.
func (m *Manager) SetPublisher(p EventPublisher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil {
		p = noopPublisher{}
	}
	m.pub = p
}
