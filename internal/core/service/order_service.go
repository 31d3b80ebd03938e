package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

var orderReservedFields = []string{"_id", "userId", "status", "createdAt"}

type OrderService struct {
	repo   ports.OrderRepository
	keys   ports.IdempotencyStore
	logger zerolog.Logger
}

// NewOrderService returns an OrderService. keys may be nil, in which case
// Idempotency-Key headers are ignored.
func NewOrderService(repo ports.OrderRepository, keys ports.IdempotencyStore, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, keys: keys, logger: logger}
}

// Create stores the cart as a new order owned by the caller. When an
// idempotency key is supplied and already produced an order, that order id
// is returned without writing again.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	if key != "" && s.keys != nil {
		// Keys are scoped per user so two customers cannot collide.
		key = input.UserID + ":" + key
		existing, reserved, err := s.keys.Reserve(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency check failed, processing anyway")
			key = ""
		case !reserved && existing != "":
			s.logger.Info().Str("idempotency_key", key).Str("order_id", existing).Msg("idempotent replay")
			return &ports.OrderResult{ID: existing, Replayed: true}, nil
		case !reserved:
			return nil, domain.ErrOrderInFlight
		}
	} else {
		key = ""
	}

	status := strings.TrimSpace(input.Fields.String("status"))
	if status == "" {
		status = domain.OrderStatusInProgress
	}

	order := &domain.Order{
		UserID:    input.UserID,
		Status:    status,
		CreatedAt: time.Now().UTC(),
		Extra:     input.Fields.Without(orderReservedFields...),
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		if key != "" {
			if rerr := s.keys.Release(ctx, key); rerr != nil {
				s.logger.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	if key != "" {
		if err := s.keys.Complete(ctx, key, id); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to record idempotency key")
		}
	}

	s.logger.Info().Str("order_id", id).Str("user_id", input.UserID).Str("status", status).Msg("order created")
	return &ports.OrderResult{ID: id}, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus sets the order status, defaulting to Completed.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(status) == "" {
		status = domain.OrderStatusCompleted
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
