package dto

type CreateOrderRequest struct {
	UserID uint   `json:"user_id"`
	Status string `json:"status,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type AddItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}
