package impl

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/domain"
	"storefront-api/internal/dto"
)

type memoryProductCache struct {
	rows        []domain.PopularProduct
	set         bool
	hits        int
	invalidated int
}

func (m *memoryProductCache) GetTop5(ctx context.Context) ([]domain.PopularProduct, bool) {
	if !m.set {
		return nil, false
	}
	m.hits++
	return m.rows, true
}

func (m *memoryProductCache) SetTop5(ctx context.Context, rows []domain.PopularProduct) error {
	m.rows = rows
	m.set = true
	return nil
}

func (m *memoryProductCache) Invalidate(ctx context.Context) error {
	m.rows = nil
	m.set = false
	m.invalidated++
	return nil
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductServiceImpl(newTestStore(t), nil)
	ctx := context.Background()

	cases := []dto.CreateProductRequest{
		{Name: "", Price: floatPtr(1)},
		{Name: "   ", Price: floatPtr(1)},
		{Name: "Widget", Price: nil},
		{Name: "Widget", Price: floatPtr(-0.5)},
	}
	for _, c := range cases {
		if _, err := svc.Create(ctx, c); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("create(%+v): expected ErrInvalidInput, got %v", c, err)
		}
	}

	prod, err := svc.Create(ctx, dto.CreateProductRequest{Name: "  Widget ", Price: floatPtr(9.99), Category: "tools"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if prod.Name != "Widget" || prod.Price != 9.99 {
		t.Fatalf("unexpected product: %+v", prod)
	}
}

func TestTop5RanksByQuantitySold(t *testing.T) {
	st := newTestStore(t)
	svc := NewProductServiceImpl(st, nil)
	ctx := context.Background()

	var products []*domain.Product
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		p, err := svc.Create(ctx, dto.CreateProductRequest{Name: name, Price: floatPtr(1)})
		if err != nil {
			t.Fatalf("create product %s: %v", name, err)
		}
		products = append(products, p)
	}

	ord := &domain.Order{UserID: 1, Status: domain.OrderActive}
	if err := st.Orders().Create(ctx, ord); err != nil {
		t.Fatalf("create order: %v", err)
	}
	// product[1] sells 7, product[3] sells 4, product[0] sells 1.
	for _, sale := range []struct {
		idx int
		qty int
	}{{1, 5}, {1, 2}, {3, 4}, {0, 1}} {
		item := &domain.OrderItem{OrderID: ord.ID, ProductID: products[sale.idx].ID, Quantity: sale.qty}
		if err := st.Orders().AddItem(ctx, item); err != nil {
			t.Fatalf("add item: %v", err)
		}
	}

	rows, err := svc.Top5(ctx)
	if err != nil {
		t.Fatalf("top5: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0].ID != products[1].ID || rows[0].Sold != 7 {
		t.Fatalf("expected product %d with 7 sold first, got %+v", products[1].ID, rows[0])
	}
	if rows[1].ID != products[3].ID || rows[1].Sold != 4 {
		t.Fatalf("expected product %d with 4 sold second, got %+v", products[3].ID, rows[1])
	}
	if rows[2].ID != products[0].ID || rows[2].Sold != 1 {
		t.Fatalf("expected product %d with 1 sold third, got %+v", products[0].ID, rows[2])
	}
}

func TestTop5UsesCache(t *testing.T) {
	st := newTestStore(t)
	cache := &memoryProductCache{}
	svc := NewProductServiceImpl(st, cache)
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Widget", Price: floatPtr(1)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("create must invalidate the ranking, invalidations=%d", cache.invalidated)
	}

	if _, err := svc.Top5(ctx); err != nil {
		t.Fatalf("top5 (miss): %v", err)
	}
	if !cache.set {
		t.Fatal("top5 miss must populate the cache")
	}

	if _, err := svc.Top5(ctx); err != nil {
		t.Fatalf("top5 (hit): %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected exactly one cache hit, got %d", cache.hits)
	}
}

func TestProductsByCategory(t *testing.T) {
	svc := NewProductServiceImpl(newTestStore(t), nil)
	ctx := context.Background()

	for _, p := range []dto.CreateProductRequest{
		{Name: "hammer", Price: floatPtr(5), Category: "tools"},
		{Name: "mug", Price: floatPtr(3), Category: "kitchen"},
		{Name: "saw", Price: floatPtr(8), Category: "tools"},
	} {
		if _, err := svc.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.Name, err)
		}
	}

	tools, err := svc.ByCategory(ctx, "tools")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
}
