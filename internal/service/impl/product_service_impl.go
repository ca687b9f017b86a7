package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront-api/internal/domain"
	"storefront-api/internal/dto"
	"storefront-api/internal/service"
	"storefront-api/internal/store"
)

type ProductServiceImpl struct {
	store *store.Store
	cache service.ProductCache // nil when no cache is configured
}

func NewProductServiceImpl(st *store.Store, cache service.ProductCache) *ProductServiceImpl {
	return &ProductServiceImpl{store: st, cache: cache}
}

func (p *ProductServiceImpl) Create(ctx context.Context, r dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if r.Price == nil || *r.Price < 0 {
		return nil, domain.ErrInvalidInput
	}

	prod := &domain.Product{Name: name, Price: *r.Price, Category: r.Category}
	if err := p.store.Products().Create(ctx, prod); err != nil {
		return nil, err
	}

	// The popularity ranking now has a new contender with zero sales.
	if p.cache != nil {
		if err := p.cache.Invalidate(ctx); err != nil {
			slog.Warn("product cache invalidate failed", "error", err)
		}
	}
	return prod, nil
}

func (p *ProductServiceImpl) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return p.store.Products().GetByID(ctx, id)
}

func (p *ProductServiceImpl) List(ctx context.Context) ([]domain.Product, error) {
	return p.store.Products().List(ctx)
}

func (p *ProductServiceImpl) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return p.store.Products().ByCategory(ctx, category)
}

func (p *ProductServiceImpl) Top5(ctx context.Context) ([]domain.PopularProduct, error) {
	if p.cache != nil {
		if rows, ok := p.cache.GetTop5(ctx); ok {
			return rows, nil
		}
	}
	rows, err := p.store.Products().Top5(ctx)
	if err != nil {
		return nil, err
	}
	if p.cache != nil {
		if err := p.cache.SetTop5(ctx, rows); err != nil {
			slog.Warn("product cache set failed", "error", err)
		}
	}
	return rows, nil
}
