package ports

import (
	"context"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (string, error)
	// List returns all orders, newest first.
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// IdempotencyStore remembers which order a client supplied key produced.
type IdempotencyStore interface {
	// Reserve claims key. When the key was already claimed it returns the
	// stored order id ("" while the first request is still in flight) and
	// reserved=false.
	Reserve(ctx context.Context, key string) (orderID string, reserved bool, err error)
	Complete(ctx context.Context, key, orderID string) error
	Release(ctx context.Context, key string) error
}

// CreateOrderInput carries a checkout request.
type CreateOrderInput struct {
	UserID         string
	Fields         domain.Fields
	IdempotencyKey string
}

// OrderResult is returned after creating an order.
type OrderResult struct {
	ID string
	// Replayed is true when the Idempotency-Key matched an earlier order.
	Replayed bool
}

type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
