package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return insertedID(res), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return findAll[domain.Order](ctx, r.col, bson.M{}, newestFirst())
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return setByID(ctx, r.col, id, bson.M{"status": status})
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// EnsureIndexes backs the newest-first admin listing.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}})
	return err
}
