package catalog

type CreateProductReq struct {
	Name          string   `json:"name" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Kind          string   `json:"kind" validate:"required,oneof=SALE RENTAL PACKAGE"`
	Price         float64  `json:"price" validate:"gte=0"`
	DailyRate     float64  `json:"daily_rate" validate:"gte=0"`
	WeeklyRate    *float64 `json:"weekly_rate,omitempty"`
	TotalQuantity int64    `json:"total_quantity" validate:"gte=0"`
	Stock         int64    `json:"stock" validate:"gte=0"`
}

type AddStockReq struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}
