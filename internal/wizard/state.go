// Package wizard holds the four-step preference form state machine and the
// prompt it produces. It has no knowledge of HTTP or of the model service.
package wizard

import "strings"

// Step bounds.
const (
	FirstStep = 1
	LastStep  = 4
)

// Field names one collected value.
type Field string

const (
	FieldType     Field = "type"
	FieldFavorite Field = "favorite"
	FieldGenre    Field = "genre"
	FieldMood     Field = "mood"
)

var stepFields = [LastStep]Field{FieldType, FieldFavorite, FieldGenre, FieldMood}

// Fields returns the collected fields in step order.
func Fields() []Field { return append([]Field(nil), stepFields[:]...) }

// FieldForStep returns the field collected at step, or "" if step is out of range.
func FieldForStep(step int) Field {
	if step < FirstStep || step > LastStep {
		return ""
	}
	return stepFields[step-1]
}

// Preferences are the four values that make up a prompt.
type Preferences struct {
	Type     string
	Favorite string
	Genre    string
	Mood     string
}

// Missing returns the first empty field in step order, or "" when all are set.
func (p Preferences) Missing() Field {
	for _, f := range stepFields {
		if strings.TrimSpace(p.get(f)) == "" {
			return f
		}
	}
	return ""
}

func (p Preferences) get(f Field) string {
	switch f {
	case FieldType:
		return p.Type
	case FieldFavorite:
		return p.Favorite
	case FieldGenre:
		return p.Genre
	case FieldMood:
		return p.Mood
	}
	return ""
}

// State is the mutable form state of one wizard session.
// It is not safe for concurrent use; callers serialize access.
type State struct {
	Preferences
	Step          int
	IsLoading     bool
	Listing       string
	FormSubmitted bool
}

// New returns a state positioned at the first step.
func New() *State { return &State{Step: FirstStep} }

// Value returns the collected value for f.
func (s *State) Value(f Field) string { return s.Preferences.get(f) }

// Current returns the field collected at the current step.
func (s *State) Current() Field { return FieldForStep(s.Step) }

// Set stores value for the current step's field as entered. Blank values are
// caught by Next and Missing, not here.
func (s *State) Set(value string) error {
	if s.FormSubmitted {
		return ErrFormSubmitted
	}
	switch s.Current() {
	case FieldType:
		s.Type = value
	case FieldFavorite:
		s.Favorite = value
	case FieldGenre:
		s.Genre = value
	case FieldMood:
		s.Mood = value
	default:
		return stepRangeError{step: s.Step}
	}
	return nil
}

// Next advances one step. The current step's field must be non-empty.
func (s *State) Next() error {
	if s.FormSubmitted {
		return ErrFormSubmitted
	}
	if s.Step >= LastStep {
		return ErrNoNextStep
	}
	f := s.Current()
	if f == "" {
		return stepRangeError{step: s.Step}
	}
	if strings.TrimSpace(s.Value(f)) == "" {
		return IncompleteError{Field: f}
	}
	s.Step++
	return nil
}

// Back moves one step back. Collected values are kept. A no-op at the first step.
func (s *State) Back() {
	if s.FormSubmitted || s.Step <= FirstStep {
		return
	}
	s.Step--
}

// Complete reports whether all four fields are non-empty.
func (s *State) Complete() bool { return s.Missing() == "" }

// CanSubmit reports whether the submit control is enabled.
func (s *State) CanSubmit() bool {
	return s.Step == LastStep && s.Complete() && !s.IsLoading && !s.FormSubmitted
}

// Clone returns a copy safe to hand to readers.
func (s *State) Clone() State { return *s }
