package order

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KasunInd27/CampQuest-sub000/model"
	"github.com/KasunInd27/CampQuest-sub000/repository/inventory"
	orderrepo "github.com/KasunInd27/CampQuest-sub000/repository/order"
	"github.com/KasunInd27/CampQuest-sub000/service/payment"
	"github.com/KasunInd27/CampQuest-sub000/util/database/dbtest"
)

type repoMock struct {
	insertFn        func(ctx context.Context, tx *sql.Tx, o *model.Order) error
	findByIDFn      func(ctx context.Context, id string) (*model.Order, error)
	findForUpdateFn func(ctx context.Context, tx *sql.Tx, id string) (*model.Order, error)
	updateStatusFn  func(ctx context.Context, tx *sql.Tx, id string, status model.OrderStatus) error
	setCancelledFn  func(ctx context.Context, tx *sql.Tx, id string, reason *string) error
	updateContactFn func(ctx context.Context, tx *sql.Tx, id string, c model.Customer, d *model.DeliveryAddress) error
	setPriorityFn   func(ctx context.Context, tx *sql.Tx, id string, p model.Priority) error
	listByUserFn    func(ctx context.Context, userID int64) ([]orderrepo.Summary, error)
	listByStatusFn  func(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]orderrepo.Summary, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, tx, o)
}
func (m *repoMock) FindByID(ctx context.Context, id string) (*model.Order, error) {
	return m.findByIDFn(ctx, id)
}
func (m *repoMock) FindForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.Order, error) {
	return m.findForUpdateFn(ctx, tx, id)
}
func (m *repoMock) UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status model.OrderStatus) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, tx, id, status)
}
func (m *repoMock) SetCancelled(ctx context.Context, tx *sql.Tx, id string, reason *string) error {
	if m.setCancelledFn == nil {
		return nil
	}
	return m.setCancelledFn(ctx, tx, id, reason)
}
func (m *repoMock) UpdateContact(ctx context.Context, tx *sql.Tx, id string, c model.Customer, d *model.DeliveryAddress) error {
	if m.updateContactFn == nil {
		return nil
	}
	return m.updateContactFn(ctx, tx, id, c, d)
}
func (m *repoMock) SetPriority(ctx context.Context, tx *sql.Tx, id string, p model.Priority) error {
	if m.setPriorityFn == nil {
		return nil
	}
	return m.setPriorityFn(ctx, tx, id, p)
}
func (m *repoMock) ListByUser(ctx context.Context, userID int64) ([]orderrepo.Summary, error) {
	return m.listByUserFn(ctx, userID)
}
func (m *repoMock) ListByStatus(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]orderrepo.Summary, error) {
	return m.listByStatusFn(ctx, status, limit, offset)
}

type catalogMock struct {
	packageFn func(ctx context.Context, id int64) (*model.PackageProduct, error)
}

func (m *catalogMock) PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error) {
	return m.packageFn(ctx, id)
}

type cartsMock struct {
	snapshotFn func(ctx context.Context, key string) (*model.Cart, error)
	clearFn    func(ctx context.Context, key string) error
	cleared    bool
}

func (m *cartsMock) Snapshot(ctx context.Context, key string) (*model.Cart, error) {
	return m.snapshotFn(ctx, key)
}
func (m *cartsMock) Clear(ctx context.Context, key string) error {
	m.cleared = true
	if m.clearFn == nil {
		return nil
	}
	return m.clearFn(ctx, key)
}

func newTestService(t *testing.T, r Repo, ledger inventory.Ledger, cat Catalog, carts CartStore) *service {
	t.Helper()
	return New(dbtest.New(t), r, ledger, cat, carts, 350).(*service)
}

func fptr(f float64) *float64 { return &f }

func testCustomer() model.Customer {
	return model.Customer{UserID: 7, Name: "Nimal Perera", Email: "nimal@example.com", Phone: "0771234567"}
}

func testDelivery() *model.DeliveryAddress {
	return &model.DeliveryAddress{Street: "12 Lake Rd", City: "Kandy", Province: "Central", PostalCode: "20000"}
}

func eightDayPeriod() *model.RentalPeriod {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &model.RentalPeriod{StartDate: start, EndDate: start.AddDate(0, 0, 8)}
}

func available(t *testing.T, l *inventory.MemoryLedger, productID int64) int64 {
	t.Helper()
	rec, err := l.Record(context.Background(), productID)
	require.NoError(t, err)
	return rec.AvailableQuantity
}

// --- checkout ---

func TestCheckout_MixedCartTotals(t *testing.T) {
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)

	cart := &model.Cart{Key: "user:7", Lines: []model.CartLine{
		{ProductID: 20, Name: "Camp Stove", LineType: model.LineSale, Quantity: 2, UnitPrice: 2000},
		{ProductID: 10, Name: "4P Tent", LineType: model.LineRental, Quantity: 1, UnitPrice: 500, WeeklyRate: fptr(3000)},
	}}

	var inserted *model.Order
	r := &repoMock{insertFn: func(_ context.Context, _ *sql.Tx, o *model.Order) error {
		inserted = o
		return nil
	}}
	carts := &cartsMock{snapshotFn: func(_ context.Context, key string) (*model.Cart, error) {
		require.Equal(t, "user:7", key)
		return cart, nil
	}}

	s := newTestService(t, r, ledger, nil, carts)
	o, err := s.Checkout(context.Background(), CheckoutInput{
		CartKey:  "user:7",
		Method:   model.MethodSlip,
		Customer: testCustomer(),
		Delivery: testDelivery(),
		Period:   eightDayPeriod(),
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	// Mixed cart types as a sales order and ships.
	require.Equal(t, model.OrderSales, o.Type)
	require.Equal(t, model.StatusPending, o.Status)
	require.Equal(t, model.PaymentPending, o.PaymentStatus)
	require.Equal(t, model.PriorityNormal, o.Priority)
	require.True(t, strings.HasPrefix(o.Number, "CQ-"))

	// 2x2000 sale + 8 rental days at the weekly rate (2 weeks x 3000)
	// + shipping.
	require.Equal(t, 4000.0+6000.0+350.0, o.TotalAmount)

	rental := o.RentalLines()
	require.Len(t, rental, 1)
	require.NotNil(t, rental[0].RentalDays)
	require.Equal(t, 8, *rental[0].RentalDays)

	require.EqualValues(t, 4, available(t, ledger, 10))
	require.True(t, carts.cleared)
}

func TestCheckout_RentalOnlyCart(t *testing.T) {
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 2)

	cart := &model.Cart{Key: "user:7", Lines: []model.CartLine{
		{ProductID: 10, Name: "4P Tent", LineType: model.LineRental, Quantity: 1, UnitPrice: 500},
	}}
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) { return cart, nil }}

	s := newTestService(t, &repoMock{}, ledger, nil, carts)
	o, err := s.Checkout(context.Background(), CheckoutInput{
		CartKey:  "user:7",
		Method:   model.MethodSlip,
		Customer: testCustomer(),
		Period:   eightDayPeriod(),
	})
	require.NoError(t, err)

	// Rental orders are picked up at the shop.
	require.Equal(t, model.OrderRental, o.Type)
	require.Nil(t, o.Delivery)
	require.Zero(t, o.ShippingCost)
	require.Equal(t, 500.0*8, o.TotalAmount) // no weekly rate on this product
}

func TestCheckout_SaleOnlyCartDropsPeriod(t *testing.T) {
	cart := &model.Cart{Key: "user:7", Lines: []model.CartLine{
		{ProductID: 20, Name: "Camp Stove", LineType: model.LineSale, Quantity: 1, UnitPrice: 2000},
	}}
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) { return cart, nil }}

	s := newTestService(t, &repoMock{}, inventory.NewMemory(), nil, carts)
	o, err := s.Checkout(context.Background(), CheckoutInput{
		CartKey:  "user:7",
		Method:   model.MethodSlip,
		Customer: testCustomer(),
		Delivery: testDelivery(),
		Period:   eightDayPeriod(), // stray client period, no rental line to bill
	})
	require.NoError(t, err)
	require.Nil(t, o.RentalPeriod)
	require.Equal(t, model.OrderSales, o.Type)
	require.Equal(t, 2000.0+350.0, o.TotalAmount)
}

func TestCheckout_CardDisabled(t *testing.T) {
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) {
		t.Fatal("cart must not be read when the method is rejected")
		return nil, nil
	}}
	s := newTestService(t, &repoMock{}, inventory.NewMemory(), nil, carts)

	_, err := s.Checkout(context.Background(), CheckoutInput{CartKey: "user:7", Method: model.MethodCard, Customer: testCustomer()})
	require.ErrorIs(t, err, payment.ErrCardUnavailable)
}

func TestCheckout_EmptyCart(t *testing.T) {
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) {
		return &model.Cart{Key: "user:7"}, nil
	}}
	s := newTestService(t, &repoMock{}, inventory.NewMemory(), nil, carts)

	_, err := s.Checkout(context.Background(), CheckoutInput{CartKey: "user:7", Method: model.MethodSlip, Customer: testCustomer(), Delivery: testDelivery()})
	require.Equal(t, ErrValidation, Code(err))
}

func TestCheckout_MissingPeriodForRental(t *testing.T) {
	cart := &model.Cart{Key: "user:7", Lines: []model.CartLine{
		{ProductID: 10, Name: "4P Tent", LineType: model.LineRental, Quantity: 1, UnitPrice: 500},
	}}
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) { return cart, nil }}
	s := newTestService(t, &repoMock{}, inventory.NewMemory(), nil, carts)

	_, err := s.Checkout(context.Background(), CheckoutInput{CartKey: "user:7", Method: model.MethodSlip, Customer: testCustomer()})
	require.Equal(t, ErrValidation, Code(err))
}

func TestCheckout_InsufficientStockRollsBack(t *testing.T) {
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)
	ledger.SetStock(11, 1)

	cart := &model.Cart{Key: "user:7", Lines: []model.CartLine{
		{ProductID: 10, Name: "4P Tent", LineType: model.LineRental, Quantity: 2, UnitPrice: 500},
		{ProductID: 11, Name: "Sleeping Bag", LineType: model.LineRental, Quantity: 3, UnitPrice: 200},
	}}
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) { return cart, nil }}
	r := &repoMock{insertFn: func(_ context.Context, _ *sql.Tx, _ *model.Order) error {
		t.Fatal("nothing must be persisted when a reservation fails")
		return nil
	}}

	s := newTestService(t, r, ledger, nil, carts)
	_, err := s.Checkout(context.Background(), CheckoutInput{
		CartKey:  "user:7",
		Method:   model.MethodSlip,
		Customer: testCustomer(),
		Period:   eightDayPeriod(),
	})
	require.Equal(t, ErrNoStock, Code(err))

	// The first line's reservation was compensated.
	require.EqualValues(t, 5, available(t, ledger, 10))
	require.EqualValues(t, 1, available(t, ledger, 11))
	require.False(t, carts.cleared)
}

func TestCheckout_PersistFailureReleases(t *testing.T) {
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)

	cart := &model.Cart{Key: "user:7", Lines: []model.CartLine{
		{ProductID: 10, Name: "4P Tent", LineType: model.LineRental, Quantity: 2, UnitPrice: 500},
	}}
	carts := &cartsMock{snapshotFn: func(_ context.Context, _ string) (*model.Cart, error) { return cart, nil }}
	r := &repoMock{insertFn: func(_ context.Context, _ *sql.Tx, _ *model.Order) error {
		return errors.New("connection reset")
	}}

	s := newTestService(t, r, ledger, nil, carts)
	_, err := s.Checkout(context.Background(), CheckoutInput{
		CartKey:  "user:7",
		Method:   model.MethodSlip,
		Customer: testCustomer(),
		Period:   eightDayPeriod(),
	})
	require.Error(t, err)
	require.EqualValues(t, 5, available(t, ledger, 10))
}

func TestPackageCheckout(t *testing.T) {
	cat := &catalogMock{packageFn: func(_ context.Context, id int64) (*model.PackageProduct, error) {
		require.EqualValues(t, 3, id)
		return &model.PackageProduct{ID: 3, Name: "Weekend Kit", Price: 1200}, nil
	}}

	s := newTestService(t, &repoMock{}, inventory.NewMemory(), cat, nil)
	o, err := s.PackageCheckout(context.Background(), PackageInput{
		PackageID: 3,
		Quantity:  2,
		Method:    model.MethodSlip,
		Customer:  testCustomer(),
		Delivery:  testDelivery(),
	})
	require.NoError(t, err)
	require.Equal(t, model.OrderPackage, o.Type)
	require.Equal(t, 1200.0*2+350.0, o.TotalAmount)
}

// --- customer self-service ---

func pendingRentalOrder(createdAt time.Time) *model.Order {
	method := model.MethodSlip
	return &model.Order{
		ID:            "ord-1",
		Number:        "CQ-20260301-ABCDEF12",
		Type:          model.OrderRental,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
		PaymentMethod: &method,
		Priority:      model.PriorityNormal,
		Customer:      testCustomer(),
		Lines: []model.OrderLine{
			{ProductID: 10, Name: "4P Tent", LineType: model.LineRental, Quantity: 2, UnitPrice: 500, Subtotal: 8000},
		},
		CreatedAt: createdAt,
	}
}

func TestCustomerCancel_ReleasesStock(t *testing.T) {
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)
	require.NoError(t, ledger.Reserve(context.Background(), 10, 2))

	var gotReason *string
	r := &repoMock{
		findForUpdateFn: func(_ context.Context, _ *sql.Tx, id string) (*model.Order, error) {
			return pendingRentalOrder(time.Now()), nil
		},
		setCancelledFn: func(_ context.Context, _ *sql.Tx, _ string, reason *string) error {
			gotReason = reason
			return nil
		},
	}
	s := newTestService(t, r, ledger, nil, nil)

	reason := "  changed my plans  "
	require.NoError(t, s.CustomerCancel(context.Background(), 7, "ord-1", &reason))
	require.NotNil(t, gotReason)
	require.Equal(t, "changed my plans", *gotReason)
	require.EqualValues(t, 5, available(t, ledger, 10))
}

func TestCustomerCancel_BlankReasonDropped(t *testing.T) {
	var gotReason *string
	r := &repoMock{
		findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
			return pendingRentalOrder(time.Now()), nil
		},
		setCancelledFn: func(_ context.Context, _ *sql.Tx, _ string, reason *string) error {
			gotReason = reason
			return nil
		},
	}
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)
	s := newTestService(t, r, ledger, nil, nil)

	blank := "   "
	require.NoError(t, s.CustomerCancel(context.Background(), 7, "ord-1", &blank))
	require.Nil(t, gotReason)
}

func TestCustomerCancel_ReasonTooLong(t *testing.T) {
	s := newTestService(t, &repoMock{}, inventory.NewMemory(), nil, nil)
	long := strings.Repeat("x", 501)
	err := s.CustomerCancel(context.Background(), 7, "ord-1", &long)
	require.Equal(t, ErrValidation, Code(err))
}

func TestCustomerCancel_Guards(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
		status model.OrderStatus
		want   ErrCode
	}{
		{"not the owner", 99, model.StatusPending, ErrNotOwner},
		{"already shipped", 7, model.StatusShipped, ErrIllegalTransition},
		{"already cancelled", 7, model.StatusCancelled, ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &repoMock{findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
				o := pendingRentalOrder(time.Now())
				o.Status = tt.status
				return o, nil
			}}
			ledger := inventory.NewMemory()
			ledger.SetStock(10, 5)
			s := newTestService(t, r, ledger, nil, nil)
			err := s.CustomerCancel(context.Background(), tt.userID, "ord-1", nil)
			require.Equal(t, tt.want, Code(err))
		})
	}
}

func TestCustomerEdit_Window(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := EditInput{Name: "Nimal Perera", Email: "nimal@example.com", Phone: "0771112222"}

	tests := []struct {
		name string
		at   time.Time
		ok   bool
	}{
		{"inside the window", created.Add(23*time.Hour + 59*time.Minute), true},
		{"just past the window", created.Add(24*time.Hour + time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var contacted bool
			r := &repoMock{
				findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
					return pendingRentalOrder(created), nil
				},
				updateContactFn: func(_ context.Context, _ *sql.Tx, _ string, _ model.Customer, _ *model.DeliveryAddress) error {
					contacted = true
					return nil
				},
			}
			s := newTestService(t, r, inventory.NewMemory(), nil, nil)
			s.now = func() time.Time { return tt.at }

			err := s.CustomerEdit(context.Background(), 7, "ord-1", in)
			if tt.ok {
				require.NoError(t, err)
				require.True(t, contacted)
			} else {
				require.Equal(t, ErrIllegalTransition, Code(err))
				require.False(t, contacted)
			}
		})
	}
}

func TestCustomerEdit_NoDeliveryOnRental(t *testing.T) {
	created := time.Now()
	r := &repoMock{findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
		return pendingRentalOrder(created), nil
	}}
	s := newTestService(t, r, inventory.NewMemory(), nil, nil)

	err := s.CustomerEdit(context.Background(), 7, "ord-1", EditInput{
		Name: "Nimal Perera", Email: "nimal@example.com", Phone: "0771112222",
		Delivery: testDelivery(),
	})
	require.Equal(t, ErrValidation, Code(err))
}

// --- staff operations ---

func TestStaffUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    model.OrderStatus
		typ     model.OrderType
		to      model.OrderStatus
		wantErr ErrCode
	}{
		{"pending to processing", model.StatusPending, model.OrderRental, model.StatusProcessing, ""},
		{"backwards move rejected", model.StatusShipped, model.OrderSales, model.StatusProcessing, ErrIllegalTransition},
		{"terminal is final", model.StatusCancelled, model.OrderSales, model.StatusProcessing, ErrIllegalTransition},
		{"returned needs a rental", model.StatusDelivered, model.OrderSales, model.StatusReturned, ErrIllegalTransition},
		{"rental return", model.StatusDelivered, model.OrderRental, model.StatusReturned, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &repoMock{findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
				o := pendingRentalOrder(time.Now())
				o.Status = tt.from
				o.Type = tt.typ
				return o, nil
			}}
			ledger := inventory.NewMemory()
			ledger.SetStock(10, 5)
			s := newTestService(t, r, ledger, nil, nil)

			err := s.StaffUpdateStatus(context.Background(), "ord-1", tt.to)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Equal(t, tt.wantErr, Code(err))
			}
		})
	}
}

func TestStaffUpdateStatus_ReturnReleasesStock(t *testing.T) {
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)
	require.NoError(t, ledger.Reserve(context.Background(), 10, 2))

	r := &repoMock{findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
		o := pendingRentalOrder(time.Now())
		o.Status = model.StatusDelivered
		return o, nil
	}}
	s := newTestService(t, r, ledger, nil, nil)

	require.NoError(t, s.StaffUpdateStatus(context.Background(), "ord-1", model.StatusReturned))
	require.EqualValues(t, 5, available(t, ledger, 10))
}

func TestSetPriority(t *testing.T) {
	var got model.Priority
	r := &repoMock{
		findForUpdateFn: func(_ context.Context, _ *sql.Tx, _ string) (*model.Order, error) {
			return pendingRentalOrder(time.Now()), nil
		},
		setPriorityFn: func(_ context.Context, _ *sql.Tx, _ string, p model.Priority) error {
			got = p
			return nil
		},
	}
	s := newTestService(t, r, inventory.NewMemory(), nil, nil)

	require.NoError(t, s.SetPriority(context.Background(), "ord-1", model.PriorityHigh))
	require.Equal(t, model.PriorityHigh, got)

	err := s.SetPriority(context.Background(), "ord-1", "URGENT")
	require.Equal(t, ErrValidation, Code(err))
}

func TestBulkUpdateStatus_BestEffort(t *testing.T) {
	r := &repoMock{findForUpdateFn: func(_ context.Context, _ *sql.Tx, id string) (*model.Order, error) {
		if id == "ord-missing" {
			return nil, orderrepo.ErrNotFound
		}
		return pendingRentalOrder(time.Now()), nil
	}}
	ledger := inventory.NewMemory()
	ledger.SetStock(10, 5)
	s := newTestService(t, r, ledger, nil, nil)

	res := s.BulkUpdateStatus(context.Background(), []string{"ord-1", "ord-missing", "ord-2"}, model.StatusProcessing)
	require.Equal(t, []string{"ord-1", "ord-2"}, res.Updated)
	require.Len(t, res.Failed, 1)
	require.Equal(t, "ord-missing", res.Failed[0].OrderID)
}

func TestList_ClampsLimit(t *testing.T) {
	var gotLimit, gotOffset int
	r := &repoMock{listByStatusFn: func(_ context.Context, _ *model.OrderStatus, limit, offset int) ([]orderrepo.Summary, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}}
	s := newTestService(t, r, inventory.NewMemory(), nil, nil)

	_, err := s.List(context.Background(), nil, 0, -3)
	require.NoError(t, err)
	require.Equal(t, 50, gotLimit)
	require.Equal(t, 0, gotOffset)

	_, err = s.List(context.Background(), nil, 1000, 20)
	require.NoError(t, err)
	require.Equal(t, 50, gotLimit)
	require.Equal(t, 20, gotOffset)
}

func TestGetForUser_Ownership(t *testing.T) {
	r := &repoMock{findByIDFn: func(_ context.Context, _ string) (*model.Order, error) {
		return pendingRentalOrder(time.Now()), nil
	}}
	s := newTestService(t, r, inventory.NewMemory(), nil, nil)

	o, err := s.GetForUser(context.Background(), 7, "ord-1")
	require.NoError(t, err)
	require.Equal(t, "ord-1", o.ID)

	_, err = s.GetForUser(context.Background(), 99, "ord-1")
	require.Equal(t, ErrNotOwner, Code(err))
}
