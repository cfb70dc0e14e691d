package manager

import (
	"context"
	"fmt"
	"time"

	"recommender/internal/llm"
	"recommender/internal/wizard"
)

// Submit stores value (the last step's field, when non-empty) and issues one
// model call for the session. Precondition failures are returned as errors and
// leave the session unchanged. Model failures are logged and swallowed: the
// session stops loading, keeps its form visible and Submit returns nil.
func (m *Manager) Submit(ctx context.Context, id, value string) (Snapshot, error) {
	m.mu.Lock()
	s, err := m.lookupLocked(id)
	if err != nil {
		m.mu.Unlock()
		return Snapshot{}, err
	}
	st := s.State
	if st.IsLoading {
		snap := s.snapshot()
		m.mu.Unlock()
		submitRejections.WithLabelValues("in_flight").Inc()
		return snap, submitInFlightError{id: id}
	}
	if err := m.prepareSubmitLocked(st, value); err != nil {
		snap := s.snapshot()
		m.mu.Unlock()
		submitRejections.WithLabelValues("invalid").Inc()
		return snap, err
	}
	prompt, err := wizard.BuildPrompt(st.Preferences)
	if err != nil {
		snap := s.snapshot()
		m.mu.Unlock()
		return snap, err
	}
	gen := m.gen
	st.IsLoading = true
	m.inflight++
	m.pub.Publish(Event{Name: "submit_start", SessionID: id})
	m.mu.Unlock()

	m.log.Debug().Str("session", id).Str("prompt", prompt).Msg("submit")
	listing, genErr := m.generate(ctx, gen, prompt)

	m.mu.Lock()
	defer m.mu.Unlock()
	st.IsLoading = false
	m.inflight--
	s.LastUsed = m.now()
	if genErr != nil {
		m.submitsFailed++
		m.lastErr = genErr.Error()
		m.log.Error().Err(genErr).Str("session", id).Msg("recommendation failed")
		m.pub.Publish(Event{Name: "submit_failed", SessionID: id, Fields: map[string]any{"error": genErr.Error()}})
		return s.snapshot(), nil
	}
	st.Listing = listing
	st.FormSubmitted = true
	m.submitsOK++
	m.pub.Publish(Event{Name: "submit_ok", SessionID: id})
	return s.snapshot(), nil
}

// prepareSubmitLocked applies value to the last step and checks that the
// session can submit. On error the state is unchanged.
func (m *Manager) prepareSubmitLocked(st *wizard.State, value string) error {
	if st.FormSubmitted {
		return wizard.ErrFormSubmitted
	}
	if st.Step != wizard.LastStep {
		return errNotAtLastStep
	}
	prev := st.Clone()
	if value != "" {
		if err := m.checkOptionLocked(st.Current(), value); err != nil {
			return err
		}
		if err := st.Set(value); err != nil {
			*st = prev
			return err
		}
	}
	if f := st.Missing(); f != "" {
		*st = prev
		return wizard.IncompleteError{Field: f}
	}
	return nil
}

// Result is the outcome of a stateless recommendation.
type Result struct {
	Prompt  string
	Listing string
}

// Recommend builds the prompt for p and calls the model once. Unlike Submit,
// failures are returned to the caller.
func (m *Manager) Recommend(ctx context.Context, p wizard.Preferences) (Result, error) {
	if err := m.validatePreferences(p); err != nil {
		return Result{}, err
	}
	prompt, err := wizard.BuildPrompt(p)
	if err != nil {
		return Result{}, err
	}
	m.mu.RLock()
	gen := m.gen
	m.mu.RUnlock()
	if gen == nil {
		return Result{Prompt: prompt}, generatorUnavailableError{}
	}
	listing, err := m.generate(ctx, gen, prompt)
	if err != nil {
		return Result{Prompt: prompt}, err
	}
	return Result{Prompt: prompt, Listing: listing}, nil
}

// generate calls gen once, recording metrics. A panicking generator is reported as an error.
func (m *Manager) generate(ctx context.Context, gen llm.Generator, prompt string) (out string, err error) {
	if gen == nil {
		inferenceTotal.WithLabelValues("unavailable").Inc()
		return "", generatorUnavailableError{}
	}
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		inferenceTotal.WithLabelValues(outcome).Inc()
		inferenceDuration.Observe(time.Since(start).Seconds())
	}()
	return gen.Generate(ctx, prompt)
}
