package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KasunInd27/CampQuest-sub000/model"
	"github.com/KasunInd27/CampQuest-sub000/repository/inventory"
	orderrepo "github.com/KasunInd27/CampQuest-sub000/repository/order"
	"github.com/KasunInd27/CampQuest-sub000/service/payment"
)

// editWindow bounds customer self-service edits after creation.
// Cancellation has no time bound, only a status bound.
const editWindow = 24 * time.Hour

type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status model.OrderStatus) error
	SetCancelled(ctx context.Context, tx *sql.Tx, id string, reason *string) error
	UpdateContact(ctx context.Context, tx *sql.Tx, id string, c model.Customer, d *model.DeliveryAddress) error
	SetPriority(ctx context.Context, tx *sql.Tx, id string, p model.Priority) error
	ListByUser(ctx context.Context, userID int64) ([]orderrepo.Summary, error)
	ListByStatus(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]orderrepo.Summary, error)
}

type Catalog interface {
	PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error)
}

// CartStore is the slice of the cart service checkout consumes.
type CartStore interface {
	Snapshot(ctx context.Context, key string) (*model.Cart, error)
	Clear(ctx context.Context, key string) error
}

type CheckoutInput struct {
	CartKey  string
	Method   model.PaymentMethod
	Customer model.Customer
	Delivery *model.DeliveryAddress
	Period   *model.RentalPeriod
}

type PackageInput struct {
	PackageID int64
	Quantity  int64
	Method    model.PaymentMethod
	Customer  model.Customer
	Delivery  *model.DeliveryAddress
}

type EditInput struct {
	Name     string
	Email    string
	Phone    string
	Delivery *model.DeliveryAddress
}

type BulkFailure struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

type BulkResult struct {
	Updated []string      `json:"updated"`
	Failed  []BulkFailure `json:"failed"`
}

type Service interface {
	Checkout(ctx context.Context, in CheckoutInput) (*model.Order, error)
	PackageCheckout(ctx context.Context, in PackageInput) (*model.Order, error)

	GetForUser(ctx context.Context, userID int64, orderID string) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]orderrepo.Summary, error)

	CustomerCancel(ctx context.Context, userID int64, orderID string, reason *string) error
	CustomerEdit(ctx context.Context, userID int64, orderID string, in EditInput) error

	Get(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]orderrepo.Summary, error)
	StaffUpdateStatus(ctx context.Context, orderID string, next model.OrderStatus) error
	SetPriority(ctx context.Context, orderID string, p model.Priority) error
	BulkUpdateStatus(ctx context.Context, orderIDs []string, next model.OrderStatus) *BulkResult
	BulkUpdatePriority(ctx context.Context, orderIDs []string, p model.Priority) *BulkResult
}

type service struct {
	db          *sql.DB
	r           Repo
	ledger      inventory.Ledger
	catalog     Catalog
	carts       CartStore
	shippingFee float64
	now         func() time.Time
}

func New(db *sql.DB, r Repo, ledger inventory.Ledger, catalog Catalog, carts CartStore, shippingFee float64) Service {
	return &service{
		db:          db,
		r:           r,
		ledger:      ledger,
		catalog:     catalog,
		carts:       carts,
		shippingFee: shippingFee,
		now:         time.Now,
	}
}

// ----- checkout -----

func (s *service) Checkout(ctx context.Context, in CheckoutInput) (*model.Order, error) {
	if err := payment.MethodEnabled(in.Method); err != nil {
		return nil, err
	}

	cart, err := s.carts.Snapshot(ctx, in.CartKey)
	if err != nil {
		return nil, err
	}

	d := newCartDraft(cart, in.Customer, in.Delivery, in.Period)
	o, err := s.assemble(d, in.Customer, in.Method)
	if err != nil {
		return nil, err
	}

	// Reserve every rental line; any failure rolls the earlier
	// reservations back so nothing is held for an order that never
	// existed.
	reserved, err := s.reserveLines(ctx, o.RentalLines())
	if err != nil {
		s.releaseLines(ctx, reserved)
		if errors.Is(err, inventory.ErrInsufficientStock) {
			return nil, makeErr(ErrNoStock, "item unavailable")
		}
		if errors.Is(err, inventory.ErrProductNotFound) {
			return nil, makeErr(ErrNotFound, "product not found")
		}
		return nil, err
	}

	if err := s.persist(ctx, o); err != nil {
		s.releaseLines(ctx, reserved)
		return nil, err
	}

	if err := s.carts.Clear(ctx, in.CartKey); err != nil {
		slog.Warn("cart clear after checkout", "cart_key", in.CartKey, "err", err)
	}
	return o, nil
}

func (s *service) PackageCheckout(ctx context.Context, in PackageInput) (*model.Order, error) {
	if err := payment.MethodEnabled(in.Method); err != nil {
		return nil, err
	}

	pkg, err := s.catalog.PackageSnapshot(ctx, in.PackageID)
	if err != nil {
		return nil, makeErr(ErrNotFound, "package not found")
	}

	d := &packageDraft{pkg: pkg, quantity: in.Quantity, customer: in.Customer, delivery: in.Delivery}
	o, err := s.assemble(d, in.Customer, in.Method)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// assemble turns a validated draft into the immutable pending order.
func (s *service) assemble(d draft, customer model.Customer, method model.PaymentMethod) (*model.Order, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	lines, err := d.buildLines()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	o := &model.Order{
		ID:            uuid.NewString(),
		Number:        s.newOrderNumber(now),
		Type:          d.orderType(),
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
		PaymentMethod: &method,
		Priority:      model.PriorityNormal,
		Customer:      customer,
		Delivery:      d.deliveryAddress(),
		RentalPeriod:  d.rentalPeriod(),
		Lines:         lines,
		Tax:           0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if hasSaleOrderLine(lines) {
		o.ShippingCost = s.shippingFee
	}
	o.RecomputeTotal()
	return o, nil
}

func (s *service) persist(ctx context.Context, o *model.Order) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = s.r.Insert(ctx, tx, o); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) reserveLines(ctx context.Context, lines []model.OrderLine) ([]model.OrderLine, error) {
	var reserved []model.OrderLine
	for _, l := range lines {
		if err := s.ledger.Reserve(ctx, l.ProductID, l.Quantity); err != nil {
			return reserved, err
		}
		reserved = append(reserved, l)
	}
	return reserved, nil
}

func (s *service) releaseLines(ctx context.Context, lines []model.OrderLine) {
	for _, l := range lines {
		applied, err := s.ledger.Release(ctx, l.ProductID, l.Quantity)
		if err != nil {
			slog.Error("inventory release failed", "product_id", l.ProductID, "qty", l.Quantity, "err", err)
			continue
		}
		if applied < l.Quantity {
			slog.Warn("inventory release clamped at total",
				"product_id", l.ProductID, "requested", l.Quantity, "applied", applied)
		}
	}
}

func (s *service) newOrderNumber(now time.Time) string {
	return fmt.Sprintf("CQ-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}

func hasSaleOrderLine(lines []model.OrderLine) bool {
	for _, l := range lines {
		if l.LineType == model.LineSale {
			return true
		}
	}
	return false
}

// ----- customer self-service -----

func (s *service) GetForUser(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	o, err := s.r.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if o.Customer.UserID != userID {
		return nil, makeErr(ErrNotOwner, "")
	}
	return o, nil
}

func (s *service) MyOrders(ctx context.Context, userID int64) ([]orderrepo.Summary, error) {
	return s.r.ListByUser(ctx, userID)
}

func (s *service) CustomerCancel(ctx context.Context, userID int64, orderID string, reason *string) (err error) {
	reason, err = normalizeReason(reason)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	o, err := s.r.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		return mapRepoErr(err)
	}
	if o.Customer.UserID != userID {
		return makeErr(ErrNotOwner, "")
	}
	if !o.Status.CustomerCancellable() {
		return makeErr(ErrIllegalTransition, fmt.Sprintf("order in status %s cannot be cancelled", o.Status))
	}

	if err = s.r.SetCancelled(ctx, tx, orderID, reason); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	s.releaseLines(ctx, o.RentalLines())
	return nil
}

func (s *service) CustomerEdit(ctx context.Context, userID int64, orderID string, in EditInput) (err error) {
	updated := model.Customer{UserID: userID, Name: strings.TrimSpace(in.Name), Email: strings.TrimSpace(in.Email), Phone: strings.TrimSpace(in.Phone)}
	if err := validateCustomer(updated); err != nil {
		return err
	}
	if in.Delivery != nil {
		if err := validateDelivery(in.Delivery); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	o, err := s.r.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		return mapRepoErr(err)
	}
	if o.Customer.UserID != userID {
		return makeErr(ErrNotOwner, "")
	}
	if !o.Status.CustomerCancellable() || s.now().Sub(o.CreatedAt) > editWindow {
		return makeErr(ErrIllegalTransition, "order is no longer editable")
	}

	delivery := o.Delivery
	if in.Delivery != nil {
		if !o.Type.RequiresDelivery() {
			return makeErr(ErrValidation, "rental orders are picked up at the shop")
		}
		delivery = in.Delivery
	}

	if err = s.r.UpdateContact(ctx, tx, orderID, updated, delivery); err != nil {
		return err
	}
	return tx.Commit()
}

func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > 500 {
		return nil, makeErr(ErrValidation, "cancellation reason exceeds 500 characters")
	}
	return &trimmed, nil
}

// ----- staff operations -----

func (s *service) Get(ctx context.Context, orderID string) (*model.Order, error) {
	o, err := s.r.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return o, nil
}

func (s *service) List(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]orderrepo.Summary, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.r.ListByStatus(ctx, status, limit, offset)
}

func (s *service) StaffUpdateStatus(ctx context.Context, orderID string, next model.OrderStatus) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	o, err := s.r.FindForUpdate(ctx, tx, orderID)
	if err != nil {
		return mapRepoErr(err)
	}
	if !o.Status.CanTransitionTo(next) {
		return makeErr(ErrIllegalTransition, fmt.Sprintf("cannot move %s from %s to %s", o.Number, o.Status, next))
	}
	if next == model.StatusReturned && o.Type != model.OrderRental {
		return makeErr(ErrIllegalTransition, "only rental orders can be returned")
	}

	if err = s.r.UpdateStatus(ctx, tx, orderID, next); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	// Cancelled and returned orders hand their reserved units back.
	if next == model.StatusCancelled || next == model.StatusReturned {
		s.releaseLines(ctx, o.RentalLines())
	}
	return nil
}

func (s *service) SetPriority(ctx context.Context, orderID string, p model.Priority) (err error) {
	if !model.ValidPriority(string(p)) {
		return makeErr(ErrValidation, "unknown priority")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = s.r.FindForUpdate(ctx, tx, orderID); err != nil {
		return mapRepoErr(err)
	}
	if err = s.r.SetPriority(ctx, tx, orderID, p); err != nil {
		return err
	}
	return tx.Commit()
}

// BulkUpdateStatus applies the same per-order guards independently;
// failures are reported per order and never roll back the rest.
func (s *service) BulkUpdateStatus(ctx context.Context, orderIDs []string, next model.OrderStatus) *BulkResult {
	res := &BulkResult{}
	for _, id := range orderIDs {
		if err := s.StaffUpdateStatus(ctx, id, next); err != nil {
			res.Failed = append(res.Failed, BulkFailure{OrderID: id, Reason: err.Error()})
			continue
		}
		res.Updated = append(res.Updated, id)
	}
	return res
}

func (s *service) BulkUpdatePriority(ctx context.Context, orderIDs []string, p model.Priority) *BulkResult {
	res := &BulkResult{}
	for _, id := range orderIDs {
		if err := s.SetPriority(ctx, id, p); err != nil {
			res.Failed = append(res.Failed, BulkFailure{OrderID: id, Reason: err.Error()})
			continue
		}
		res.Updated = append(res.Updated, id)
	}
	return res
}

func mapRepoErr(err error) error {
	if errors.Is(err, orderrepo.ErrNotFound) || errors.Is(err, sql.ErrNoRows) {
		return makeErr(ErrNotFound, "order not found")
	}
	return err
}
