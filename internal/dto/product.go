package dto

type CreateProductRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category string   `json:"category,omitempty"`
}
