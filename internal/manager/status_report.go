package manager

import (
	"recommender/pkg/types"
)

// Status builds the response for /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	return types.StatusResponse{
		ModelID:           m.modelID,
		Region:            m.region,
		Sessions:          len(m.sessions),
		Inflight:          m.inflight,
		SubmissionsOK:     m.submitsOK,
		SubmissionsFailed: m.submitsFailed,
		EvictionsTotal:    m.evictionsTotal,
		LastError:         m.lastErr,
		UptimeSeconds:     int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix:    now.Unix(),
	}
}

// WizardState converts a snapshot to its JSON form.
func (s Snapshot) WizardState() types.WizardState {
	return types.WizardState{
		Type:          s.State.Type,
		Favorite:      s.State.Favorite,
		Genre:         s.State.Genre,
		Mood:          s.State.Mood,
		Step:          s.State.Step,
		IsLoading:     s.State.IsLoading,
		Listing:       s.State.Listing,
		FormSubmitted: s.State.FormSubmitted,
		CanSubmit:     s.CanSubmit,
	}
}
