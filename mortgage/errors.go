/*
errors.go - Error types for the mortgage engine

PURPOSE:
  The engine has exactly one failure mode: a scenario that violates its
  invariants. Everything else is pure arithmetic with defined edge cases
  (a zero interest rate is a recognized degenerate case, not an error).

USAGE:
  Callers branch with errors.Is / errors.As:

    if errors.Is(err, mortgage.ErrInvalidScenario) {
        var verr *mortgage.ValidationError
        errors.As(err, &verr)
        // verr.Field identifies the offending input
    }

SEE ALSO:
  - scenario.go: where validation happens
  - api/handlers.go: maps these to HTTP 400
*/
package mortgage

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidScenario is the root of every validation failure.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrNoRefinance is returned when a refinance comparison is requested
	// for a scenario without a refinance configuration.
	ErrNoRefinance = errors.New("scenario has no refinance configuration")

	// ErrNoResale is returned when a resale impact is requested for a
	// scenario without a resale configuration.
	ErrNoResale = errors.New("scenario has no resale configuration")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError identifies the scenario field that violated an invariant.
// Values are never silently clamped; the engine refuses the whole scenario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scenario: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidScenario
}

// IsValidation reports whether err stems from scenario validation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidScenario)
}
