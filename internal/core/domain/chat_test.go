package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestGenerationErrorKindOf(t *testing.T) {
	wrapped := fmt.Errorf("chat: %w", &GenerationError{Kind: GenerationTransport, Err: errors.New("dial tcp: timeout")})
	if got := GenerationErrorKindOf(wrapped); got != GenerationTransport {
		t.Errorf("expected transport, got %s", got)
	}
	if got := GenerationErrorKindOf(errors.New("boom")); got != GenerationMalformed {
		t.Errorf("unclassified errors should be malformed, got %s", got)
	}
}
