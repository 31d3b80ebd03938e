package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

const collectionMenu = "menu"

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenu)}
}

// menuDocument is the stored shape of a menu item. Price and category may
// have been written with any type.
type menuDocument struct {
	ID        string        `bson:"_id"`
	Category  bson.RawValue `bson:"category"`
	Name      bson.RawValue `bson:"name"`
	Price     bson.RawValue `bson:"price"`
	CreatedAt bson.RawValue `bson:"createdAt"`
	Extra     domain.Fields `bson:",inline"`
}

func (d menuDocument) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:        d.ID,
		Category:  looseString(d.Category),
		Name:      looseString(d.Name),
		Price:     loosePrice(d.Price),
		CreatedAt: looseTime(d.CreatedAt),
		Extra:     d.Extra,
	}
}

// List returns items in natural (insertion) order.
func (r *MenuRepository) List(ctx context.Context, limit int64) ([]domain.MenuItem, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	docs, err := findAll[menuDocument](ctx, r.col, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, len(docs))
	for i, d := range docs {
		items[i] = d.toDomain()
	}
	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	return insertedID(res), nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	return setByID(ctx, r.col, id, bson.M(fields))
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}
