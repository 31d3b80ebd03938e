package ports

import (
	"context"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
)

// MenuRepository defines catalog persistence.
type MenuRepository interface {
	// List returns items in storage order. limit <= 0 means no limit.
	List(ctx context.Context, limit int64) ([]domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (string, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}

// MenuReader is the read side of the catalog used by the chat pipeline.
type MenuReader interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
}

type MenuService interface {
	MenuReader
	Recommend(ctx context.Context, n int) ([]domain.MenuItem, error)
	Create(ctx context.Context, fields domain.Fields) (string, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}
