package domain

type Product struct {
	ID       uint    `gorm:"primaryKey" db:"id" json:"id"`
	Name     string  `gorm:"not null" db:"name" json:"name"`
	Price    float64 `gorm:"not null" db:"price" json:"price"`
	Category string  `db:"category" json:"category,omitempty"`
}

func (Product) TableName() string { return "products" }

// PopularProduct is a Product annotated with its total quantity sold.
type PopularProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Sold     int64   `json:"sold"`
}
