package domain

import "time"

// Event is a restaurant announcement (live music night, seasonal menu...).
// Its content is entirely free-form.
type Event struct {
	ID        string    `bson:"_id,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	Extra     Fields    `bson:",inline"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	return flatten(e.Extra, map[string]any{
		"_id":       e.ID,
		"createdAt": jsonTime(e.CreatedAt),
	})
}
