package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

var eventReservedFields = []string{"_id", "createdAt"}

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns the announcements service.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *eventService) Create(ctx context.Context, fields domain.Fields) (string, error) {
	e := &domain.Event{
		CreatedAt: time.Now().UTC(),
		Extra:     fields.Without(eventReservedFields...),
	}
	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("event_id", id).Msg("event created")
	return id, nil
}

func (s *eventService) Update(ctx context.Context, id string, fields domain.Fields) error {
	set := fields.Without(eventReservedFields...)
	if len(set) == 0 {
		return domain.ErrMissingFields
	}
	return s.repo.Update(ctx, id, set)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
