package model

import "time"

type LineType string

const (
	LineSale   LineType = "SALE"
	LineRental LineType = "RENTAL"
)

// CartLine is one entry in a cart, identified by (ProductID, LineType).
// RentalDays is set for rental lines only.
type CartLine struct {
	ProductID  int64    `json:"product_id"`
	Name       string   `json:"name"`
	LineType   LineType `json:"line_type"`
	Quantity   int64    `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"` // sale price or rental daily rate
	WeeklyRate *float64 `json:"weekly_rate,omitempty"`
	RentalDays *int     `json:"rental_days,omitempty"`
}

type Cart struct {
	Key       string     `json:"key"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

func (c *Cart) HasRentalLine() bool {
	for _, l := range c.Lines {
		if l.LineType == LineRental {
			return true
		}
	}
	return false
}

func (c *Cart) HasSaleLine() bool {
	for _, l := range c.Lines {
		if l.LineType == LineSale {
			return true
		}
	}
	return false
}
