package cart

type AddLineReq struct {
	ProductID  int64  `json:"product_id" validate:"required,gt=0"`
	LineType   string `json:"line_type" validate:"required,oneof=SALE RENTAL"`
	Quantity   int64  `json:"quantity" validate:"required,gte=1"`
	RentalDays int    `json:"rental_days" validate:"omitempty,gte=1"`
}

type UpdateQuantityReq struct {
	LineType string `json:"line_type" validate:"required,oneof=SALE RENTAL"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
}

type UpdateDaysReq struct {
	RentalDays int `json:"rental_days" validate:"required,gte=1"`
}
