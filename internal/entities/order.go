package entities

import "time"

type Order struct {
	ID          string
	Items       []OrderItem
	Address     string
	TotalAmount float64
	CreatedAt   time.Time
}

type OrderItem struct {
	Name     string
	Quantity int
	Price    float64
}
