package service

import (
	"context"

	"storefront-api/internal/domain"
	"storefront-api/internal/dto"
)

// ProductCache holds derived catalog answers. A miss (or an unreachable
// cache) falls back to the store.
type ProductCache interface {
	GetTop5(ctx context.Context) ([]domain.PopularProduct, bool)
	SetTop5(ctx context.Context, products []domain.PopularProduct) error
	Invalidate(ctx context.Context) error
}

type ProductService interface {
	Create(ctx context.Context, r dto.CreateProductRequest) (*domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Top5(ctx context.Context) ([]domain.PopularProduct, error)
}
