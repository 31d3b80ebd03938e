package ports

import (
	"context"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, e *domain.Event) (string, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Create(ctx context.Context, fields domain.Fields) (string, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}
