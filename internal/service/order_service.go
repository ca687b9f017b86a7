package service

import (
	"context"

	"storefront-api/internal/domain"
	"storefront-api/internal/dto"
)

// Policy decides whether the authenticated actor may operate on a given
// user's orders. It is the single place to tighten authorization.
type Policy interface {
	Authorize(actor *Claims, targetUserID uint) error
}

type OrderService interface {
	Create(ctx context.Context, actor *Claims, r dto.CreateOrderRequest) (*domain.Order, error)
	SetStatus(ctx context.Context, actor *Claims, id uint, status string) (*domain.Order, error)
	Delete(ctx context.Context, actor *Claims, id uint) error
	AddItem(ctx context.Context, actor *Claims, orderID uint, r dto.AddItemRequest) (*domain.OrderItem, error)
	Current(ctx context.Context, actor *Claims, userID uint) (*domain.Order, error)
	Completed(ctx context.Context, actor *Claims, userID uint) ([]domain.Order, error)
}
