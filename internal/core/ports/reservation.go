package ports

import (
	"context"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

type ReservationRepository interface {
	ExistsForSlot(ctx context.Context, slot domain.Slot) (bool, error)
	Create(ctx context.Context, r *domain.Reservation) (string, error)
	// List returns all reservations, newest first.
	List(ctx context.Context) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// CreateReservationInput carries a booking request. Fields holds the
// remaining form attributes (guest name, party size, phone...).
type CreateReservationInput struct {
	UserID string
	Slot   domain.Slot
	Fields domain.Fields
}

type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput) (string, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
