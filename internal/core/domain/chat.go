package domain

import (
	"errors"
	"fmt"
)

// GenerationErrorKind classifies why the external generation call failed.
type GenerationErrorKind string

const (
	GenerationRemote    GenerationErrorKind = "remote"
	GenerationMalformed GenerationErrorKind = "malformed"
	GenerationTransport GenerationErrorKind = "transport"
)

// GenerationError is returned by the generation client. The kind is kept
// for logs and metrics only; callers never show it to end users.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// GenerationErrorKindOf returns the kind of a GenerationError in err's
// chain, or Malformed when err carries no classification.
func GenerationErrorKindOf(err error) GenerationErrorKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return GenerationMalformed
}

// LearnSignal is a customer interaction hint (item viewed, added to cart).
type LearnSignal struct {
	UserID   string
	Category string
	Name     string
}
