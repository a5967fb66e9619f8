package order

import "time"

type DeliveryReq struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

type PeriodReq struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type CheckoutReq struct {
	PaymentMethod string       `json:"payment_method" validate:"required,oneof=CARD SLIP"`
	Name          string       `json:"name" validate:"required"`
	Email         string       `json:"email" validate:"required,email"`
	Phone         string       `json:"phone" validate:"required"`
	Delivery      *DeliveryReq `json:"delivery,omitempty"`
	Period        *PeriodReq   `json:"rental_period,omitempty"`
}

type PackageCheckoutReq struct {
	PackageID     int64        `json:"package_id" validate:"required,gt=0"`
	Quantity      int64        `json:"quantity" validate:"required,gte=1"`
	PaymentMethod string       `json:"payment_method" validate:"required,oneof=CARD SLIP"`
	Name          string       `json:"name" validate:"required"`
	Email         string       `json:"email" validate:"required,email"`
	Phone         string       `json:"phone" validate:"required"`
	Delivery      *DeliveryReq `json:"delivery,omitempty"`
}

type CancelReq struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type EditContactReq struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required"`
	Delivery *DeliveryReq `json:"delivery,omitempty"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePriorityReq struct {
	Priority string `json:"priority" validate:"required,oneof=LOW NORMAL HIGH"`
}

type BulkStatusReq struct {
	OrderIDs []string `json:"order_ids" validate:"required,min=1,dive,required"`
	Status   string   `json:"status" validate:"required"`
}

type BulkPriorityReq struct {
	OrderIDs []string `json:"order_ids" validate:"required,min=1,dive,required"`
	Priority string   `json:"priority" validate:"required,oneof=LOW NORMAL HIGH"`
}
