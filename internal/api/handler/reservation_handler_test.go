package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

type stubReservations struct {
	got    ports.CreateReservationInput
	err    error
	status string
}

func (s *stubReservations) Create(_ context.Context, in ports.CreateReservationInput) (string, error) {
	s.got = in
	return "r1", s.err
}

func (s *stubReservations) List(context.Context) ([]domain.Reservation, error) { return nil, nil }

func (s *stubReservations) UpdateStatus(_ context.Context, _ string, status string) error {
	s.status = status
	return nil
}

func (s *stubReservations) Delete(context.Context, string) error { return nil }

func TestReservationHandler_Create_NormalizesTable(t *testing.T) {
	svc := &stubReservations{}
	h := NewReservationHandler(svc)

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(jsonRequest(http.MethodPost, "/api/reservations",
		`{"date":"2026-05-04","time":"19:00","table":5,"guests":4}`), rec)
	withCustomer(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectJSON(t, rec, `{"message":"Reservation created"}`)

	want := domain.Slot{Date: "2026-05-04", Time: "19:00", Table: "5"}
	if svc.got.Slot != want {
		t.Fatalf("expected slot %+v, got %+v", want, svc.got.Slot)
	}
	if svc.got.UserID != "u1" {
		t.Fatalf("expected user u1, got %q", svc.got.UserID)
	}
	if svc.got.Fields["guests"] != float64(4) {
		t.Fatalf("extra fields must be forwarded, got %v", svc.got.Fields)
	}
}

func TestReservationHandler_Create_Conflict(t *testing.T) {
	h := NewReservationHandler(&stubReservations{err: domain.ErrTableBooked})

	c := newEcho().NewContext(jsonRequest(http.MethodPost, "/api/reservations",
		`{"date":"2026-05-04","time":"19:00","table":"5"}`), httptest.NewRecorder())
	withCustomer(c)

	if err := h.Create(c); !errors.Is(err, domain.ErrTableBooked) {
		t.Fatalf("expected ErrTableBooked, got %v", err)
	}
}

func TestReservationHandler_Update_EmptyBody(t *testing.T) {
	svc := &stubReservations{status: "unset"}
	h := NewReservationHandler(svc)

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(httptest.NewRequest(http.MethodPut, "/api/reservations/r1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.status != "" {
		t.Fatalf("empty body must leave the default to the service, got %q", svc.status)
	}
	expectJSON(t, rec, `{"message":"Reservation updated"}`)
}

func TestSlotValue(t *testing.T) {
	cases := map[any]string{
		float64(5): "5",
		5.5:        "5.5",
		"A1":       "A1",
		true:       "true",
	}
	for in, want := range cases {
		if got := slotValue(in); got != want {
			t.Errorf("slotValue(%v) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []any{nil, map[string]any{"n": 1}, []any{1}} {
		if got := slotValue(in); got != "" {
			t.Errorf("slotValue(%v) = %q, want empty", in, got)
		}
	}
}
