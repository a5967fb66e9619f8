package model

import "time"

type ProductKind string

const (
	ProductSale    ProductKind = "SALE"
	ProductRental  ProductKind = "RENTAL"
	ProductPackage ProductKind = "PACKAGE"
)

type Product struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Category          string      `json:"category"`
	Kind              ProductKind `json:"kind"`
	Price             float64     `json:"price"`                 // sale or package price
	DailyRate         float64     `json:"daily_rate"`            // rental only
	WeeklyRate        *float64    `json:"weekly_rate,omitempty"` // rental only, optional break
	TotalQuantity     int64       `json:"total_quantity"`        // rental fleet size
	AvailableQuantity int64       `json:"available_quantity"`
	Stock             int64       `json:"stock"` // sale stock
	CreatedAt         time.Time   `json:"created_at"`
}

// RentalProduct is the read-only catalog snapshot the order core prices from.
type RentalProduct struct {
	ID                int64
	Name              string
	DailyRate         float64
	WeeklyRate        *float64
	TotalQuantity     int64
	AvailableQuantity int64
}

type SaleProduct struct {
	ID    int64
	Name  string
	Price float64
	Stock int64
}

type PackageProduct struct {
	ID    int64
	Name  string
	Price float64
}
