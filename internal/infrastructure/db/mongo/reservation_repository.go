package mongo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

const collectionReservations = "reservations"

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

// reservationDocument is the stored shape of a reservation. Older
// bookings may hold a numeric table.
type reservationDocument struct {
	ID        string        `bson:"_id"`
	Date      bson.RawValue `bson:"date"`
	Time      bson.RawValue `bson:"time"`
	Table     bson.RawValue `bson:"table"`
	UserID    bson.RawValue `bson:"userId"`
	Status    bson.RawValue `bson:"status"`
	CreatedAt bson.RawValue `bson:"createdAt"`
	Extra     domain.Fields `bson:",inline"`
}

func (d reservationDocument) toDomain() domain.Reservation {
	return domain.Reservation{
		ID: d.ID,
		Slot: domain.Slot{
			Date:  looseString(d.Date),
			Time:  looseString(d.Time),
			Table: looseString(d.Table),
		},
		UserID:    looseString(d.UserID),
		Status:    looseString(d.Status),
		CreatedAt: looseTime(d.CreatedAt),
		Extra:     d.Extra,
	}
}

// slotFilter matches a slot whether its table was stored as text or as a
// number.
func slotFilter(slot domain.Slot) bson.M {
	filter := bson.M{"date": slot.Date, "time": slot.Time, "table": slot.Table}
	if n, err := strconv.ParseFloat(slot.Table, 64); err == nil {
		filter["table"] = bson.M{"$in": bson.A{slot.Table, n}}
	}
	return filter
}

// ExistsForSlot reports whether any reservation holds the slot, whatever
// its status.
func (r *ReservationRepository) ExistsForSlot(ctx context.Context, slot domain.Slot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, slotFilter(slot)).Err()
	if isNoDocuments(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find reservation: %w", err)
	}
	return true, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := r.col.InsertOne(ctx, res)
	if err != nil {
		return "", fmt.Errorf("insert reservation: %w", err)
	}
	return insertedID(out), nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	docs, err := findAll[reservationDocument](ctx, r.col, bson.M{}, newestFirst())
	if err != nil {
		return nil, err
	}
	out := make([]domain.Reservation, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return setByID(ctx, r.col, id, bson.M{"status": status})
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// EnsureIndexes creates the slot lookup index.
func (r *ReservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}, {Key: "table", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
