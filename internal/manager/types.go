package manager

import (
	"time"

	"recommender/internal/wizard"
)

// Session is one browser's wizard.
type Session struct {
	ID       string
	State    *wizard.State
	LastUsed time.Time
}

// Snapshot is a read-only projection of a session.
type Snapshot struct {
	ID        string
	State     wizard.State
	CanSubmit bool
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{ID: s.ID, State: s.State.Clone(), CanSubmit: s.State.CanSubmit()}
}
