package domain

import "time"

type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	return s == OrderActive || s == OrderCompleted
}

// orderTransitions is the full transition table. Deletion is not a status;
// it is handled by the store and leaves no row behind.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderActive:    {OrderCompleted},
	OrderCompleted: {},
}

// CanTransition reports whether an order in status s may move to next.
// A completed order never reopens.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID        uint        `gorm:"primaryKey" db:"id" json:"id"`
	UserID    uint        `gorm:"index:ix_orders_user;not null" db:"user_id" json:"user_id"`
	Status    OrderStatus `gorm:"type:text;not null" db:"status" json:"status"`
	Items     []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time   `gorm:"not null" db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" db:"updated_at" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uint `gorm:"primaryKey" db:"id" json:"id"`
	OrderID   uint `gorm:"index:ix_order_items_order;not null" db:"order_id" json:"order_id"`
	ProductID uint `gorm:"not null" db:"product_id" json:"product_id"`
	Quantity  int  `gorm:"not null" db:"quantity" json:"quantity"`
}

func (OrderItem) TableName() string { return "order_items" }
