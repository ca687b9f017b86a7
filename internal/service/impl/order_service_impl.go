package impl

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"storefront-api/internal/dto"
	"storefront-api/internal/observability/metrics"
	"storefront-api/internal/service"
	"storefront-api/internal/store"
)

type OrderServiceImpl struct {
	store  *store.Store
	policy service.Policy
}

func NewOrderServiceImpl(st *store.Store, policy service.Policy) *OrderServiceImpl {
	return &OrderServiceImpl{store: st, policy: policy}
}

func (o *OrderServiceImpl) Create(ctx context.Context, actor *service.Claims, r dto.CreateOrderRequest) (*domain.Order, error) {
	result := "success"
	defer func() {
		metrics.OrdersCreatedTotal.WithLabelValues(result).Inc()
	}()

	if r.UserID == 0 {
		result = "failure"
		return nil, domain.ErrInvalidInput
	}
	status := domain.OrderStatus(r.Status)
	if r.Status == "" {
		status = domain.OrderActive
	}
	if !status.Valid() {
		result = "failure"
		return nil, domain.ErrInvalidStatus
	}
	if err := o.policy.Authorize(actor, r.UserID); err != nil {
		result = "failure"
		return nil, err
	}

	ord := &domain.Order{UserID: r.UserID, Status: status}
	if err := o.store.Orders().Create(ctx, ord); err != nil {
		result = "failure"
		return nil, err
	}
	return ord, nil
}

// SetStatus applies the transition table: the only legal move is
// active -> completed. A missing (or deleted) order answers NotFound.
func (o *OrderServiceImpl) SetStatus(ctx context.Context, actor *service.Claims, id uint, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	ord, err := o.store.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.policy.Authorize(actor, ord.UserID); err != nil {
		return nil, err
	}
	if !ord.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}
	return o.store.Orders().UpdateStatus(ctx, id, next)
}

// Delete is idempotent; deleting an order that is already gone succeeds.
func (o *OrderServiceImpl) Delete(ctx context.Context, actor *service.Claims, id uint) error {
	ord, err := o.store.Orders().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := o.policy.Authorize(actor, ord.UserID); err != nil {
		return err
	}
	return o.store.Orders().Delete(ctx, id)
}

func (o *OrderServiceImpl) AddItem(ctx context.Context, actor *service.Claims, orderID uint, r dto.AddItemRequest) (*domain.OrderItem, error) {
	result := "success"
	defer func() {
		metrics.OrderItemsAddedTotal.WithLabelValues(result).Inc()
	}()

	// Validated before any datastore work.
	if r.Quantity <= 0 {
		result = "failure"
		return nil, domain.ErrInvalidQuantity
	}
	if r.ProductID == 0 {
		result = "failure"
		return nil, domain.ErrInvalidInput
	}

	item := &domain.OrderItem{OrderID: orderID, ProductID: r.ProductID, Quantity: r.Quantity}
	if err := o.store.Orders().AddItem(ctx, item); err != nil {
		result = "failure"
		return nil, err
	}
	return item, nil
}

func (o *OrderServiceImpl) Current(ctx context.Context, actor *service.Claims, userID uint) (*domain.Order, error) {
	if err := o.policy.Authorize(actor, userID); err != nil {
		return nil, err
	}
	return o.store.Orders().CurrentActive(ctx, userID)
}

func (o *OrderServiceImpl) Completed(ctx context.Context, actor *service.Claims, userID uint) ([]domain.Order, error) {
	if err := o.policy.Authorize(actor, userID); err != nil {
		return nil, err
	}
	return o.store.Orders().CompletedByUser(ctx, userID)
}
