package store

import (
	"context"
	"errors"

	"storefront-api/internal/domain"

	"gorm.io/gorm"
)

type ProductStore struct{ db *gorm.DB }

func (s *Store) Products() *ProductStore { return &ProductStore{db: s.DB} }

func (p *ProductStore) Create(ctx context.Context, prod *domain.Product) error {
	return p.db.WithContext(ctx).Create(prod).Error
}

func (p *ProductStore) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var prod domain.Product
	if err := p.db.WithContext(ctx).First(&prod, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &prod, nil
}

func (p *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := p.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *ProductStore) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	err := p.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Top5 ranks products by total quantity sold across all order items.
func (p *ProductStore) Top5(ctx context.Context) ([]domain.PopularProduct, error) {
	var rows []domain.PopularProduct
	err := p.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.price, p.category, COALESCE(SUM(oi.quantity), 0) AS sold
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id, p.name, p.price, p.category
		ORDER BY sold DESC, p.id
		LIMIT 5`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
