package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/pkg/cache"
)

type stubMenuRepo struct {
	items     []domain.MenuItem
	listCalls int
	listErr   error
	updated   map[string]domain.Fields
	deleted   []string
}

func newStubMenuRepo(items ...domain.MenuItem) *stubMenuRepo {
	return &stubMenuRepo{items: items, updated: make(map[string]domain.Fields)}
}

func (r *stubMenuRepo) List(_ context.Context, limit int64) ([]domain.MenuItem, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := append([]domain.MenuItem(nil), r.items...)
	if limit > 0 && int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubMenuRepo) Create(_ context.Context, item *domain.MenuItem) (string, error) {
	item.ID = "item-" + strconv.Itoa(len(r.items)+1)
	r.items = append(r.items, *item)
	return item.ID, nil
}

func (r *stubMenuRepo) Update(_ context.Context, id string, fields domain.Fields) error {
	for _, it := range r.items {
		if it.ID == id {
			r.updated[id] = fields
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubMenuRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func newMenuSvc(repo *stubMenuRepo, now func() time.Time) *MenuService {
	return NewMenuService(repo, cache.NewSnapshot[[]domain.MenuItem](5*time.Second, cache.WithClock(now)), zerolog.Nop())
}

func TestMenuService_Create_CoercesStringPrice(t *testing.T) {
	repo := newStubMenuRepo()
	svc := newMenuSvc(repo, time.Now)

	id, err := svc.Create(context.Background(), domain.Fields{
		"name":     "Tiramisu",
		"category": "Desserts",
		"price":    "12.50",
		"image":    "t.png",
		"_id":      "client-picked",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored := repo.items[0]
	if stored.ID != id {
		t.Fatalf("expected id %q, got %q", id, stored.ID)
	}
	if stored.Price != 12.5 {
		t.Fatalf("expected numeric price 12.5, got %v", stored.Price)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("createdAt must be stamped")
	}
	if stored.Extra["image"] != "t.png" {
		t.Error("extra fields must be kept")
	}
	for _, k := range []string{"_id", "price", "name", "category"} {
		if _, ok := stored.Extra[k]; ok {
			t.Errorf("%s must not leak into extra fields", k)
		}
	}
}

func TestMenuService_Create_Validation(t *testing.T) {
	repo := newStubMenuRepo()
	svc := newMenuSvc(repo, time.Now)

	if _, err := svc.Create(context.Background(), domain.Fields{"price": 3}); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("missing name: expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Fields{"name": "Soup"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("missing price: expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Fields{"name": "Soup", "price": "cheap"}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("bad price: expected ErrInvalidPrice, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(repo.items))
	}
}

func TestMenuService_List_UsesSnapshot(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	repo := newStubMenuRepo(domain.MenuItem{ID: "1", Name: "Soup", Price: 4})
	svc := newMenuSvc(repo, clock)

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	now = now.Add(4 * time.Second)
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one storage read inside the window, got %d", repo.listCalls)
	}

	now = now.Add(2 * time.Second)
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected reload after the window, got %d reads", repo.listCalls)
	}
}

func TestMenuService_List_StaleAfterWrite(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := newStubMenuRepo(domain.MenuItem{ID: "1", Name: "Soup", Price: 4})
	svc := newMenuSvc(repo, func() time.Time { return now })

	_, _ = svc.List(context.Background())
	_, _ = svc.Create(context.Background(), domain.Fields{"name": "Stew", "price": 9})

	items, _ := svc.List(context.Background())
	if len(items) != 1 {
		t.Fatalf("writes do not invalidate the listing; expected 1 cached item, got %d", len(items))
	}
}

func TestMenuService_Recommend(t *testing.T) {
	repo := newStubMenuRepo(
		domain.MenuItem{ID: "1"}, domain.MenuItem{ID: "2"}, domain.MenuItem{ID: "3"}, domain.MenuItem{ID: "4"},
	)
	svc := newMenuSvc(repo, time.Now)

	items, err := svc.Recommend(context.Background(), 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 3 || items[0].ID != "1" || items[2].ID != "3" {
		t.Fatalf("unexpected recommendation: %+v", items)
	}
}

func TestMenuService_Update(t *testing.T) {
	repo := newStubMenuRepo(domain.MenuItem{ID: "1", Name: "Soup"})
	svc := newMenuSvc(repo, time.Now)

	err := svc.Update(context.Background(), "1", domain.Fields{"price": "6.75", "_id": "x", "createdAt": "y", "spicy": true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	set := repo.updated["1"]
	if set["price"] != 6.75 {
		t.Errorf("expected coerced price, got %#v", set["price"])
	}
	if _, ok := set["_id"]; ok {
		t.Error("_id must not be updated")
	}
	if set["spicy"] != true {
		t.Error("free-form fields must be passed through")
	}

	if err := svc.Update(context.Background(), "1", domain.Fields{"price": -2}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
	if err := svc.Update(context.Background(), "1", domain.Fields{"_id": "x"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty update, got %v", err)
	}
	if err := svc.Update(context.Background(), "nope", domain.Fields{"name": "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
