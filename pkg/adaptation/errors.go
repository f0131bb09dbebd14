package adaptation

import (
	"errors"
	"fmt"
	"strings"

	"adaptctl/pkg/protocol"
)

// ErrNotAdaptable is matched by every AdaptationError.
var ErrNotAdaptable = errors.New("no adaptation path")

// AdaptationError reports that no adaptation path leads from an object to
// the requested protocol.
type AdaptationError struct {
	Adaptee  any
	Protocol *protocol.Protocol
}

func (e *AdaptationError) Error() string {
	return fmt.Sprintf("could not adapt %s to %s", protocol.ValueOf(e.Adaptee), e.Protocol)
}

// Is makes errors.Is(err, ErrNotAdaptable) hold.
func (e *AdaptationError) Is(target error) bool {
	return target == ErrNotAdaptable
}

// FactoryError wraps an error returned by an offer's factory. The search is
// aborted when a factory fails.
type FactoryError struct {
	Offer *Offer
	Err   error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("factory for %s failed: %v", e.Offer, e.Err)
}

func (e *FactoryError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}
