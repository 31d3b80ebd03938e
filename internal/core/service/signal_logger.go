package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// SignalLogger records learning signals as structured log lines. Signals
// are not persisted.
type SignalLogger struct {
	log zerolog.Logger
}

func NewSignalLogger(log zerolog.Logger) *SignalLogger {
	return &SignalLogger{log: log}
}

func (s *SignalLogger) Record(_ context.Context, signal domain.LearnSignal) error {
	s.log.Info().
		Str("user_id", signal.UserID).
		Str("category", signal.Category).
		Str("name", signal.Name).
		Msg("learn signal")
	return nil
}
