package compute

import "time"

// OrderItem представляет собой позицию в заказе
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order представляет собой заказ покупателя
type Order struct {
	Date       time.Time   `json:"date"`
	Total      float64     `json:"total"`
	CustomerID string      `json:"customerId"`
	Items      []OrderItem `json:"items"`
}

// Product представляет собой товар каталога.
// Description, Category, Tags и Views могут отсутствовать.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Price       float64  `json:"price"`
	InStock     bool     `json:"inStock"`
	Views       int      `json:"views,omitempty"`
}

// TimeRange представляет собой временное окно [Start, End],
// включительно с обеих сторон
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains проверяет, попадает ли момент времени в окно
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && !t.After(tr.End)
}
