package order

import (
	"strings"

	"github.com/KasunInd27/CampQuest-sub000/model"
	"github.com/KasunInd27/CampQuest-sub000/service/pricing"
)

const maxRentalSpanDays = 365

// A draft is one statically-typed variant of an order in the making.
// Each variant carries only the fields its order type needs; validate
// fails fast and returns the first violation.
type draft interface {
	orderType() model.OrderType
	validate() error
	buildLines() ([]model.OrderLine, error)
	deliveryAddress() *model.DeliveryAddress
	rentalPeriod() *model.RentalPeriod
}

// salesDraft covers orders with at least one sale line; mixed carts
// with rental lines alongside keep the shared rental period.
type salesDraft struct {
	lines    []model.CartLine
	customer model.Customer
	delivery *model.DeliveryAddress
	period   *model.RentalPeriod
}

type rentalDraft struct {
	lines    []model.CartLine
	customer model.Customer
	period   *model.RentalPeriod
}

type packageDraft struct {
	pkg      *model.PackageProduct
	quantity int64
	customer model.Customer
	delivery *model.DeliveryAddress
}

func newCartDraft(cart *model.Cart, customer model.Customer, delivery *model.DeliveryAddress, period *model.RentalPeriod) draft {
	if cart.HasRentalLine() && !cart.HasSaleLine() {
		return &rentalDraft{lines: cart.Lines, customer: customer, period: period}
	}
	return &salesDraft{lines: cart.Lines, customer: customer, delivery: delivery, period: period}
}

func (d *salesDraft) orderType() model.OrderType { return model.OrderSales }
func (d *rentalDraft) orderType() model.OrderType { return model.OrderRental }
func (d *packageDraft) orderType() model.OrderType { return model.OrderPackage }

func (d *salesDraft) deliveryAddress() *model.DeliveryAddress { return d.delivery }
func (d *rentalDraft) deliveryAddress() *model.DeliveryAddress { return nil }
func (d *packageDraft) deliveryAddress() *model.DeliveryAddress { return d.delivery }

// rentalPeriod is kept only when the cart actually holds rental lines;
// a client-supplied period on a pure sale cart is discarded.
func (d *salesDraft) rentalPeriod() *model.RentalPeriod {
	if !hasRental(d.lines) {
		return nil
	}
	return d.period
}
func (d *rentalDraft) rentalPeriod() *model.RentalPeriod { return d.period }
func (d *packageDraft) rentalPeriod() *model.RentalPeriod { return nil }

func (d *salesDraft) validate() error {
	if len(d.lines) == 0 {
		return makeErr(ErrValidation, "cart is empty")
	}
	if err := validateCustomer(d.customer); err != nil {
		return err
	}
	if err := validateDelivery(d.delivery); err != nil {
		return err
	}
	if hasRental(d.lines) {
		return validatePeriod(d.period)
	}
	return nil
}

func (d *rentalDraft) validate() error {
	if len(d.lines) == 0 {
		return makeErr(ErrValidation, "cart is empty")
	}
	if err := validateCustomer(d.customer); err != nil {
		return err
	}
	return validatePeriod(d.period)
}

func (d *packageDraft) validate() error {
	if d.pkg == nil {
		return makeErr(ErrNotFound, "package not found")
	}
	if d.quantity < 1 {
		return makeErr(ErrValidation, "quantity must be >= 1")
	}
	if err := validateCustomer(d.customer); err != nil {
		return err
	}
	return validateDelivery(d.delivery)
}

func (d *salesDraft) buildLines() ([]model.OrderLine, error) {
	return buildCartLines(d.lines, d.period)
}

func (d *rentalDraft) buildLines() ([]model.OrderLine, error) {
	return buildCartLines(d.lines, d.period)
}

func (d *packageDraft) buildLines() ([]model.OrderLine, error) {
	return []model.OrderLine{{
		ProductID: d.pkg.ID,
		Name:      d.pkg.Name,
		LineType:  model.LineSale,
		Quantity:  d.quantity,
		UnitPrice: d.pkg.Price,
		Subtotal:  d.pkg.Price * float64(d.quantity),
	}}, nil
}

// buildCartLines snapshots cart lines into immutable order lines. All
// rental lines are billed over the single shared period.
func buildCartLines(lines []model.CartLine, period *model.RentalPeriod) ([]model.OrderLine, error) {
	var days int
	if period != nil {
		var err error
		days, err = pricing.RentalDays(period.StartDate, period.EndDate)
		if err != nil {
			return nil, makeErr(ErrValidation, err.Error())
		}
	}

	out := make([]model.OrderLine, 0, len(lines))
	for _, l := range lines {
		ol := model.OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			LineType:  l.LineType,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
		if l.LineType == model.LineRental {
			amount, err := pricing.PriceRentalLine(l.UnitPrice, l.WeeklyRate, days, int(l.Quantity))
			if err != nil {
				return nil, makeErr(ErrValidation, err.Error())
			}
			d := days
			ol.RentalDays = &d
			ol.Subtotal = amount
		} else {
			ol.Subtotal = l.UnitPrice * float64(l.Quantity)
		}
		out = append(out, ol)
	}
	return out, nil
}

func hasRental(lines []model.CartLine) bool {
	for _, l := range lines {
		if l.LineType == model.LineRental {
			return true
		}
	}
	return false
}

func validateCustomer(c model.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return makeErr(ErrValidation, "customer name is required")
	}
	if strings.TrimSpace(c.Email) == "" || !strings.Contains(c.Email, "@") {
		return makeErr(ErrValidation, "customer email is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return makeErr(ErrValidation, "customer phone is required")
	}
	return nil
}

func validateDelivery(d *model.DeliveryAddress) error {
	if d == nil {
		return makeErr(ErrValidation, "delivery address is required")
	}
	if strings.TrimSpace(d.Street) == "" || strings.TrimSpace(d.City) == "" ||
		strings.TrimSpace(d.Province) == "" || strings.TrimSpace(d.PostalCode) == "" {
		return makeErr(ErrValidation, "delivery address is incomplete")
	}
	return nil
}

func validatePeriod(p *model.RentalPeriod) error {
	if p == nil {
		return makeErr(ErrValidation, "rental period is required")
	}
	days, err := pricing.RentalDays(p.StartDate, p.EndDate)
	if err != nil {
		return makeErr(ErrValidation, "rental period end date is before start date")
	}
	if days > maxRentalSpanDays {
		return makeErr(ErrValidation, "rental period exceeds 365 days")
	}
	return nil
}
