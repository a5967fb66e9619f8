package model

import "time"

type OrderType string

const (
	OrderSales   OrderType = "SALES"
	OrderRental  OrderType = "RENTAL"
	OrderPackage OrderType = "PACKAGE"
)

// RequiresDelivery reports whether the order type ships to an address.
// Rental-only orders are picked up at the shop.
func (t OrderType) RequiresDelivery() bool { return t != OrderRental }

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
	StatusReturned   OrderStatus = "RETURNED"
)

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusReturned
}

// statusTransitions is the single source of truth for fulfillment moves.
// Every mutator goes through CanTransitionTo; nothing checks inline.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCompleted},
	StatusDelivered:  {StatusCompleted, StatusReturned},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range statusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CustomerCancellable reports whether a customer may still self-cancel.
func (s OrderStatus) CustomerCancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered,
		StatusCompleted, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "PENDING"
	PaymentVerification PaymentStatus = "VERIFICATION_PENDING"
	PaymentCompleted    PaymentStatus = "COMPLETED"
	PaymentFailed       PaymentStatus = "FAILED"
	PaymentRefunded     PaymentStatus = "REFUNDED"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:      {PaymentVerification, PaymentFailed},
	PaymentVerification: {PaymentCompleted, PaymentFailed},
	PaymentCompleted:    {PaymentRefunded},
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, t := range paymentTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	MethodCard PaymentMethod = "CARD"
	MethodSlip PaymentMethod = "SLIP"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

func ValidPriority(p string) bool {
	switch Priority(p) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}

type Customer struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

type RentalPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// OrderLine is an immutable snapshot of a cart line at checkout time.
type OrderLine struct {
	ProductID  int64    `json:"product_id"`
	Name       string   `json:"name"`
	LineType   LineType `json:"line_type"`
	Quantity   int64    `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	RentalDays *int     `json:"rental_days,omitempty"`
	Subtotal   float64  `json:"subtotal"`
}

type PaymentSlip struct {
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type Order struct {
	ID            string           `json:"id"`
	Number        string           `json:"number"`
	Type          OrderType        `json:"type"`
	Status        OrderStatus      `json:"status"`
	PaymentStatus PaymentStatus    `json:"payment_status"`
	PaymentMethod *PaymentMethod   `json:"payment_method,omitempty"`
	PaymentSlip   *PaymentSlip     `json:"payment_slip,omitempty"`
	Priority      Priority         `json:"priority"`
	Customer      Customer         `json:"customer"`
	Delivery      *DeliveryAddress `json:"delivery,omitempty"`
	RentalPeriod  *RentalPeriod    `json:"rental_period,omitempty"`
	Lines         []OrderLine      `json:"lines"`
	ShippingCost  float64          `json:"shipping_cost"`
	Tax           float64          `json:"tax"`
	TotalAmount   float64          `json:"total_amount"`
	CancelReason  *string          `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// RecomputeTotal derives TotalAmount from lines + shipping + tax.
// It is the only writer of TotalAmount.
func (o *Order) RecomputeTotal() {
	var sum float64
	for _, l := range o.Lines {
		sum += l.Subtotal
	}
	o.TotalAmount = sum + o.ShippingCost + o.Tax
}

// RentalLines returns the lines holding inventory reservations.
func (o *Order) RentalLines() []OrderLine {
	var out []OrderLine
	for _, l := range o.Lines {
		if l.LineType == LineRental {
			out = append(out, l)
		}
	}
	return out
}
