package domain

import "time"

const (
	ReservationStatusPending   = "Pending"
	ReservationStatusConfirmed = "Confirmed"
)

// Slot identifies a bookable table at a point in time. Two reservations
// with the same slot conflict.
type Slot struct {
	Date  string `bson:"date"`
	Time  string `bson:"time"`
	Table string `bson:"table"`
}

// Reservation is a table booking.
type Reservation struct {
	ID        string    `bson:"_id,omitempty"`
	Slot      Slot      `bson:",inline"`
	UserID    string    `bson:"userId"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	Extra     Fields    `bson:",inline"`
}

func (r Reservation) MarshalJSON() ([]byte, error) {
	return flatten(r.Extra, map[string]any{
		"_id":       r.ID,
		"date":      r.Slot.Date,
		"time":      r.Slot.Time,
		"table":     r.Slot.Table,
		"userId":    r.UserID,
		"status":    r.Status,
		"createdAt": jsonTime(r.CreatedAt),
	})
}
