package manager

import (
	"context"
	"time"

	"github.com/google/uuid"

	"recommender/internal/wizard"
)

// Ensure returns the session for id, creating a fresh one (with a new id)
// when id is empty, unknown or expired. Client-supplied ids are never adopted.
func (m *Manager) Ensure(id string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok && id != "" {
		s.LastUsed = m.now()
		return s.snapshot()
	}
	return m.createLocked().snapshot()
}

// View returns the session for id, or an unsaved first-step snapshot with an
// empty ID when there is none. Reads never allocate sessions; the first write
// goes through Ensure.
func (m *Manager) View(id string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok && id != "" {
		s.LastUsed = m.now()
		return s.snapshot()
	}
	st := wizard.New()
	return Snapshot{State: *st, CanSubmit: st.CanSubmit()}
}

// Get returns the session for id without creating one.
func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.lookupLocked(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

// Reset drops the session for id and returns a new one. This is the only way
// collected values are cleared.
func (m *Manager) Reset(id string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		sessionsGauge.Set(float64(len(m.sessions)))
		m.pub.Publish(Event{Name: "session_reset", SessionID: id})
	}
	return m.createLocked().snapshot()
}

// Sweep evicts sessions idle for longer than the TTL. Sessions with a
// submission in flight are kept. Returns the number evicted.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-m.ttl)
	n := 0
	for id, s := range m.sessions {
		if s.State.IsLoading || !s.LastUsed.Before(cutoff) {
			continue
		}
		delete(m.sessions, id)
		n++
		m.pub.Publish(Event{Name: "session_evicted", SessionID: id})
	}
	m.evictionsTotal += uint64(n)
	sessionsGauge.Set(float64(len(m.sessions)))
	if n > 0 {
		m.log.Debug().Int("evicted", n).Int("remaining", len(m.sessions)).Msg("session sweep")
	}
	return n
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}

func (m *Manager) createLocked() *Session {
	s := &Session{ID: uuid.NewString(), State: wizard.New(), LastUsed: m.now()}
	m.sessions[s.ID] = s
	sessionsGauge.Set(float64(len(m.sessions)))
	m.pub.Publish(Event{Name: "session_created", SessionID: s.ID})
	return s
}

func (m *Manager) lookupLocked(id string) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok || id == "" {
		return nil, sessionNotFoundError{id: id}
	}
	s.LastUsed = m.now()
	return s, nil
}
