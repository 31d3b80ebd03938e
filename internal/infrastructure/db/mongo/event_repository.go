package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

const collectionEvents = "events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	col *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) ports.EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	return findAll[domain.Event](ctx, r.col, bson.M{})
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return insertedID(res), nil
}

func (r *EventRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	return setByID(ctx, r.col, id, bson.M(fields))
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
