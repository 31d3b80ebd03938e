package ports

import (
	"context"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// TextGenerator is the external generation service. Errors are
// *domain.GenerationError.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatOutcome is the terminal state of the chat pipeline.
type ChatOutcome string

const (
	ChatGreeting  ChatOutcome = "greeting"
	ChatGenerated ChatOutcome = "generated"
	ChatFallback  ChatOutcome = "fallback"
)

// ChatInput is a single assistant request.
type ChatInput struct {
	UserID  string
	Message string
}

// ChatResult always carries a reply safe to show the customer.
type ChatResult struct {
	Reply   string
	Outcome ChatOutcome
	// FailureKind is set when Outcome is ChatFallback because the
	// generation call failed.
	FailureKind domain.GenerationErrorKind
}

type ChatService interface {
	Reply(ctx context.Context, input ChatInput) ChatResult
}

// SignalRecorder consumes learning signals.
type SignalRecorder interface {
	Record(ctx context.Context, signal domain.LearnSignal) error
}
