package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MenuItem is a catalog entry. Extra keeps any additional attributes the
// admin UI stored alongside the known ones.
type MenuItem struct {
	ID        string    `bson:"_id,omitempty"`
	Category  string    `bson:"category"`
	Name      string    `bson:"name"`
	Price     float64   `bson:"price"`
	CreatedAt time.Time `bson:"createdAt"`
	Extra     Fields    `bson:",inline"`
}

func (m MenuItem) MarshalJSON() ([]byte, error) {
	return flatten(m.Extra, map[string]any{
		"_id":       m.ID,
		"category":  m.Category,
		"name":      m.Name,
		"price":     m.Price,
		"createdAt": jsonTime(m.CreatedAt),
	})
}

// ParsePrice coerces a client supplied price into a float64. Numbers and
// numeric strings are accepted; anything else, and negative or non-finite
// values, yield ErrInvalidPrice.
func ParsePrice(v any) (float64, error) {
	var f float64
	switch p := v.(type) {
	case float64:
		f = p
	case float32:
		f = float64(p)
	case int:
		f = float64(p)
	case int32:
		f = float64(p)
	case int64:
		f = float64(p)
	case json.Number:
		parsed, err := p.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, p.String())
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, p)
		}
		f = parsed
	default:
		return 0, ErrInvalidPrice
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, ErrInvalidPrice
	}
	return f, nil
}
