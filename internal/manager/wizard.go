package manager

import (
	"strings"

	"recommender/internal/wizard"
)

// Advance stores value for the session's current step and moves to the next
// step. On error the session is left unchanged.
func (m *Manager) Advance(id, value string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.lookupLocked(id)
	if err != nil {
		return Snapshot{}, err
	}
	if s.State.IsLoading {
		return s.snapshot(), submitInFlightError{id: id}
	}
	if err := m.checkOptionLocked(s.State.Current(), value); err != nil {
		return s.snapshot(), err
	}
	prev := s.State.Clone()
	if err := s.State.Set(value); err != nil {
		return s.snapshot(), err
	}
	if err := s.State.Next(); err != nil {
		*s.State = prev
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

// Back moves the session one step back without clearing values.
func (m *Manager) Back(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.lookupLocked(id)
	if err != nil {
		return Snapshot{}, err
	}
	if s.State.IsLoading {
		return s.snapshot(), submitInFlightError{id: id}
	}
	s.State.Back()
	return s.snapshot(), nil
}

// checkOptionLocked rejects select values outside the catalog. Empty values
// pass here and are reported as incomplete by the wizard.
func (m *Manager) checkOptionLocked(f wizard.Field, value string) error {
	if strings.TrimSpace(value) == "" || m.catalog.Allows(f, value) {
		return nil
	}
	return invalidOptionError{field: f, value: value, allowed: m.catalog.Options(f)}
}

// validatePreferences checks every select field of p against the catalog.
func (m *Manager) validatePreferences(p wizard.Preferences) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, f := range []struct {
		field wizard.Field
		value string
	}{{wizard.FieldType, p.Type}, {wizard.FieldGenre, p.Genre}, {wizard.FieldMood, p.Mood}} {
		if err := m.checkOptionLocked(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}
