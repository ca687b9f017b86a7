package store

import (
	"context"
	"errors"
	"time"

	"storefront-api/internal/domain"

	"gorm.io/gorm"
)

type OrderStore struct{ db *gorm.DB }

func (s *Store) Orders() *OrderStore { return &OrderStore{db: s.DB} }

func (o *OrderStore) Create(ctx context.Context, ord *domain.Order) error {
	now := time.Now().UTC()
	if ord.CreatedAt.IsZero() {
		ord.CreatedAt = now
	}
	ord.UpdatedAt = now
	return o.db.WithContext(ctx).Create(ord).Error
}

func (o *OrderStore) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var ord domain.Order
	if err := o.db.WithContext(ctx).First(&ord, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &ord, nil
}

// UpdateStatus sets the status and bumps updated_at. A zero-row update means
// the order does not exist (or was deleted) and maps to ErrRecordNotFound.
func (o *OrderStore) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) (*domain.Order, error) {
	res := o.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return o.GetByID(ctx, id)
}

// Delete removes the order and its items in one transaction. Deleting an
// order that is already gone is not an error.
func (o *OrderStore) Delete(ctx context.Context, id uint) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, "id = ?", id).Error
	})
}

// AddItem appends a line item. The owning order must still exist; the check
// and the insert share a transaction so the item can never outlive it.
func (o *OrderStore) AddItem(ctx context.Context, item *domain.OrderItem) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ord domain.Order
		if err := tx.First(&ord, "id = ?", item.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}
		return tx.Create(item).Error
	})
}

// CurrentActive returns the most recently created active order for the user,
// highest id winning. "Current" is derived by ordering, never flagged.
func (o *OrderStore) CurrentActive(ctx context.Context, userID uint) (*domain.Order, error) {
	var ord domain.Order
	err := o.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.OrderActive).
		Order("id DESC").
		First(&ord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &ord, nil
}

func (o *OrderStore) CompletedByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := o.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.OrderCompleted).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderStore) ItemsByOrder(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	err := o.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
