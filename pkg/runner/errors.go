package runner

import (
	"errors"
	"fmt"
)

// Error types for the ways a property run can abort
var (
	ErrGaveUp          = errors.New("gave up")
	ErrGeneratorConfig = errors.New("generator configuration error")
)

// CheckError represents a structured run error with actionable guidance
type CheckError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *CheckError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s\n\nSuggestion: %s", e.Type, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

func (e *CheckError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// NewGaveUpError reports a run that exhausted its discard budget before
// reaching the trial target
func NewGaveUpError(passes, discards, budget int) *CheckError {
	message := fmt.Sprintf("%d discards exceeded the budget of %d with only %d of the required passes",
		discards, budget, passes)
	guidance := "The precondition rejects almost every generated value. Weaken the precondition, " +
		"replace it with a derived generator that constructs valid values directly, " +
		"or raise MaxDiscardRatio in the runner configuration."

	return &CheckError{
		Type:     ErrGaveUp,
		Message:  message,
		Guidance: guidance,
	}
}

// NewGeneratorConfigError reports a malformed generator or property
// declaration, detected before any trial executes
func NewGeneratorConfigError(cause error) *CheckError {
	guidance := "Check the generator declarations bound by this property: range bounds must " +
		"satisfy low <= high, length bounds must be non-negative, and every variable " +
		"needs a generator and a distinct name."

	return &CheckError{
		Type:     ErrGeneratorConfig,
		Message:  cause.Error(),
		Guidance: guidance,
		Cause:    cause,
	}
}
