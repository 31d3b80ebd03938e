package domain

import "time"

const (
	OrderStatusInProgress = "In Progress"
	OrderStatusCompleted  = "Completed"
)

// Order is a customer cart checkout. The cart contents live in Extra.
type Order struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"userId"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"createdAt"`
	Extra     Fields    `bson:",inline"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	return flatten(o.Extra, map[string]any{
		"_id":       o.ID,
		"userId":    o.UserID,
		"status":    o.Status,
		"createdAt": jsonTime(o.CreatedAt),
	})
}
