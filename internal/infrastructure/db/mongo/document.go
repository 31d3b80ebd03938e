package mongo

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// Documents in the restaurant collections were written through free-form
// $set updates, so scalar fields may carry any BSON type. The helpers below
// read them loosely instead of failing the whole cursor.

// looseString renders strings as is and numbers and booleans in their
// canonical text form. Anything else yields "".
func looseString(v bson.RawValue) string {
	switch v.Type {
	case bsontype.String:
		return v.StringValue()
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case bsontype.Decimal128:
		return v.Decimal128().String()
	case bsontype.Boolean:
		return strconv.FormatBool(v.Boolean())
	default:
		return ""
	}
}

// loosePrice accepts any numeric type or numeric string. Values that do not
// coerce to a valid price read as 0.
func loosePrice(v bson.RawValue) float64 {
	var raw any
	switch v.Type {
	case bsontype.Double:
		raw = v.Double()
	case bsontype.Int32:
		raw = v.Int32()
	case bsontype.Int64:
		raw = v.Int64()
	case bsontype.String, bsontype.Decimal128:
		raw = looseString(v)
	}
	p, err := domain.ParsePrice(raw)
	if err != nil {
		return 0
	}
	return p
}

// looseTime reads BSON dates and RFC 3339 strings.
func looseTime(v bson.RawValue) time.Time {
	if t, ok := v.TimeOK(); ok {
		return t
	}
	if s, ok := v.StringValueOK(); ok {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
