package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
	"github.com/smartrestaurant/restaurant-api/internal/pkg/cache"
)

// menuReservedFields are managed by the service and never taken from input.
var menuReservedFields = []string{"_id", "createdAt"}

// MenuService serves the catalog. Listing goes through a short-lived
// snapshot; writes do not invalidate it, so readers may see the previous
// listing for up to one freshness window after a change.
type MenuService struct {
	repo     ports.MenuRepository
	snapshot *cache.Snapshot[[]domain.MenuItem]
	logger   zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, snapshot *cache.Snapshot[[]domain.MenuItem], logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, snapshot: snapshot, logger: logger}
}

// List returns the full catalog in storage order.
func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.snapshot.GetOrLoad(ctx, func(ctx context.Context) ([]domain.MenuItem, error) {
		return s.repo.List(ctx, 0)
	})
}

// Recommend returns the first n items in storage order.
func (s *MenuService) Recommend(ctx context.Context, n int) ([]domain.MenuItem, error) {
	return s.repo.List(ctx, int64(n))
}

// Create stores a new item. name and price are required; price may arrive
// as a number or a numeric string and is stored as a float.
func (s *MenuService) Create(ctx context.Context, fields domain.Fields) (string, error) {
	name := strings.TrimSpace(fields.String("name"))
	rawPrice, hasPrice := fields["price"]
	if name == "" || !hasPrice {
		return "", domain.ErrMissingFields
	}

	price, err := domain.ParsePrice(rawPrice)
	if err != nil {
		return "", err
	}

	item := &domain.MenuItem{
		Name:      name,
		Category:  strings.TrimSpace(fields.String("category")),
		Price:     price,
		CreatedAt: time.Now().UTC(),
		Extra:     fields.Without(append(menuReservedFields, "name", "category", "price")...),
	}

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("menu_item_id", id).Str("name", name).Msg("menu item created")
	return id, nil
}

// Update sets the supplied fields on an item.
func (s *MenuService) Update(ctx context.Context, id string, fields domain.Fields) error {
	set := fields.Without(menuReservedFields...)
	if raw, ok := set["price"]; ok {
		price, err := domain.ParsePrice(raw)
		if err != nil {
			return err
		}
		set["price"] = price
	}
	if len(set) == 0 {
		return domain.ErrMissingFields
	}
	return s.repo.Update(ctx, id, set)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
