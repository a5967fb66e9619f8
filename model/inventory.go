package model

// InventoryRecord tracks the rentable fleet of one product.
// 0 <= AvailableQuantity <= TotalQuantity holds at all times.
type InventoryRecord struct {
	ProductID         int64 `json:"product_id"`
	TotalQuantity     int64 `json:"total_quantity"`
	AvailableQuantity int64 `json:"available_quantity"`
}
