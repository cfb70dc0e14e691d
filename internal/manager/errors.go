package manager

import (
	"errors"
	"strings"

	"recommender/internal/wizard"
)

// sessionNotFoundError signals an unknown or expired session id.
type sessionNotFoundError struct{ id string }

func (e sessionNotFoundError) Error() string { return "session not found: " + e.id }

// IsSessionNotFound reports whether err indicates a missing session.
func IsSessionNotFound(err error) bool {
	var e sessionNotFoundError
	return errors.As(err, &e)
}

// submitInFlightError signals a second submission while one is pending (return 409).
type submitInFlightError struct{ id string }

func (e submitInFlightError) Error() string { return "submission already in flight: " + e.id }

// IsSubmitInFlight reports whether err indicates a pending submission.
func IsSubmitInFlight(err error) bool {
	var e submitInFlightError
	return errors.As(err, &e)
}

// invalidOptionError signals a value outside the option catalog.
type invalidOptionError struct {
	field   wizard.Field
	value   string
	allowed []string
}

func (e invalidOptionError) Error() string {
	return string(e.field) + " " + quote(e.value) + " is not one of: " + strings.Join(e.allowed, ", ")
}

// IsInvalidOption reports whether err indicates a value outside the catalog.
func IsInvalidOption(err error) bool {
	var e invalidOptionError
	return errors.As(err, &e)
}

// generatorUnavailableError signals that no model client is configured (return 503).
type generatorUnavailableError struct{}

func (generatorUnavailableError) Error() string { return "model client not configured" }

// IsGeneratorUnavailable reports whether err indicates a missing model client.
func IsGeneratorUnavailable(err error) bool {
	var e generatorUnavailableError
	return errors.As(err, &e)
}

// IsValidation reports whether err is a caller mistake that leaves state unchanged.
func IsValidation(err error) bool {
	return IsInvalidOption(err) || wizard.IsIncomplete(err) ||
		errors.Is(err, wizard.ErrNoNextStep) || errors.Is(err, wizard.ErrFormSubmitted) ||
		errors.Is(err, errNotAtLastStep)
}

var errNotAtLastStep = errors.New("submit is only available at the last step")

func quote(s string) string { return "\"" + s + "\"" }
