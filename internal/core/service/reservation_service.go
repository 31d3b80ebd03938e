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

var reservationReservedFields = []string{"_id", "date", "time", "table", "userId", "status", "createdAt"}

type ReservationService struct {
	repo   ports.ReservationRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, logger: logger}
}

// Create books a table. A second booking for the same date, time and table
// is rejected with domain.ErrTableBooked. The check and the insert are not
// atomic; two concurrent requests for the same slot may both succeed.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput) (string, error) {
	slot := domain.Slot{
		Date:  strings.TrimSpace(input.Slot.Date),
		Time:  strings.TrimSpace(input.Slot.Time),
		Table: strings.TrimSpace(input.Slot.Table),
	}
	if slot.Date == "" || slot.Time == "" || slot.Table == "" {
		return "", domain.ErrMissingFields
	}

	taken, err := s.repo.ExistsForSlot(ctx, slot)
	if err != nil {
		return "", fmt.Errorf("check slot: %w", err)
	}
	if taken {
		s.logger.Info().Str("date", slot.Date).Str("time", slot.Time).Str("table", slot.Table).Msg("reservation conflict")
		return "", domain.ErrTableBooked
	}

	r := &domain.Reservation{
		Slot:      slot,
		UserID:    input.UserID,
		Status:    domain.ReservationStatusPending,
		CreatedAt: time.Now().UTC(),
		Extra:     input.Fields.Without(reservationReservedFields...),
	}

	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return "", fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info().Str("reservation_id", id).Str("user_id", input.UserID).Msg("reservation created")
	return id, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.List(ctx)
}

// UpdateStatus sets the reservation status, defaulting to Confirmed.
func (s *ReservationService) UpdateStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(status) == "" {
		status = domain.ReservationStatusConfirmed
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
