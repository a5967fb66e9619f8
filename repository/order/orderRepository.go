package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

var ErrNotFound = errors.New("order not found")

// Summary is the listing row shape; full aggregates come from FindByID.
type Summary struct {
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	Type          model.OrderType     `json:"type"`
	Status        model.OrderStatus   `json:"status"`
	PaymentStatus model.PaymentStatus `json:"payment_status"`
	Priority      model.Priority      `json:"priority"`
	TotalAmount   float64             `json:"total_amount"`
	CreatedAt     time.Time           `json:"created_at"`
}

type Repo interface {
	Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)

	// FindForUpdate locks the order row for the lifetime of tx. All
	// read-validate-write sequences on one order go through it.
	FindForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.Order, error)

	UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status model.OrderStatus) error
	SetCancelled(ctx context.Context, tx *sql.Tx, id string, reason *string) error
	UpdateContact(ctx context.Context, tx *sql.Tx, id string, c model.Customer, d *model.DeliveryAddress) error
	SetPriority(ctx context.Context, tx *sql.Tx, id string, p model.Priority) error
	SetPaymentSlip(ctx context.Context, tx *sql.Tx, id string, slip *model.PaymentSlip, status model.PaymentStatus) error
	SetPaymentStatus(ctx context.Context, tx *sql.Tx, id string, status model.PaymentStatus) error

	ListByUser(ctx context.Context, userID int64) ([]Summary, error)
	ListByStatus(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]Summary, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const orderCols = `
	id, number, type, status, payment_status, payment_method,
	slip_url, slip_content_type, slip_size_bytes, slip_uploaded_at,
	priority, user_id, customer_name, customer_email, customer_phone,
	delivery_street, delivery_city, delivery_province, delivery_postal_code,
	rental_start, rental_end, shipping_cost, tax, total_amount,
	cancel_reason, created_at, updated_at`

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	const q = `
		INSERT INTO orders (
			id, number, type, status, payment_status, payment_method,
			priority, user_id, customer_name, customer_email, customer_phone,
			delivery_street, delivery_city, delivery_province, delivery_postal_code,
			rental_start, rental_end, shipping_cost, tax, total_amount, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$21)`

	var street, city, province, postal *string
	if o.Delivery != nil {
		street, city = &o.Delivery.Street, &o.Delivery.City
		province, postal = &o.Delivery.Province, &o.Delivery.PostalCode
	}
	var rentalStart, rentalEnd *time.Time
	if o.RentalPeriod != nil {
		rentalStart, rentalEnd = &o.RentalPeriod.StartDate, &o.RentalPeriod.EndDate
	}

	_, err := tx.ExecContext(ctx, q,
		o.ID, o.Number, o.Type, o.Status, o.PaymentStatus, o.PaymentMethod,
		o.Priority, o.Customer.UserID, o.Customer.Name, o.Customer.Email, o.Customer.Phone,
		street, city, province, postal,
		rentalStart, rentalEnd, o.ShippingCost, o.Tax, o.TotalAmount, o.CreatedAt,
	)
	if err != nil {
		return err
	}

	const ql = `
		INSERT INTO order_lines (order_id, position, product_id, name, line_type, quantity, unit_price, rental_days, subtotal)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	for i, l := range o.Lines {
		if _, err := tx.ExecContext(ctx, ql,
			o.ID, i, l.ProductID, l.Name, l.LineType, l.Quantity, l.UnitPrice, l.RentalDays, l.Subtotal,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	o.Lines, err = r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repo) FindForUpdate(ctx context.Context, tx *sql.Tx, id string) (*model.Order, error) {
	o, err := scanOrder(tx.QueryRowContext(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	o.Lines, err = r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repo) lines(ctx context.Context, orderID string) ([]model.OrderLine, error) {
	const q = `
		SELECT product_id, name, line_type, quantity, unit_price, rental_days, subtotal
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position`
	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.LineType, &l.Quantity, &l.UnitPrice, &l.RentalDays, &l.Subtotal); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanOrder(row rowScanner) (*model.Order, error) {
	o := &model.Order{}
	var (
		method                         *model.PaymentMethod
		slipURL, slipType              *string
		slipSize                       *int64
		slipAt                         *time.Time
		street, city, province, postal *string
		rentalStart, rentalEnd         *time.Time
	)
	err := row.Scan(
		&o.ID, &o.Number, &o.Type, &o.Status, &o.PaymentStatus, &method,
		&slipURL, &slipType, &slipSize, &slipAt,
		&o.Priority, &o.Customer.UserID, &o.Customer.Name, &o.Customer.Email, &o.Customer.Phone,
		&street, &city, &province, &postal,
		&rentalStart, &rentalEnd, &o.ShippingCost, &o.Tax, &o.TotalAmount,
		&o.CancelReason, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.PaymentMethod = method
	if slipURL != nil {
		o.PaymentSlip = &model.PaymentSlip{URL: *slipURL}
		if slipType != nil {
			o.PaymentSlip.ContentType = *slipType
		}
		if slipSize != nil {
			o.PaymentSlip.SizeBytes = *slipSize
		}
		if slipAt != nil {
			o.PaymentSlip.UploadedAt = *slipAt
		}
	}
	if street != nil {
		o.Delivery = &model.DeliveryAddress{Street: *street, City: *city, Province: *province, PostalCode: *postal}
	}
	if rentalStart != nil && rentalEnd != nil {
		o.RentalPeriod = &model.RentalPeriod{StartDate: *rentalStart, EndDate: *rentalEnd}
	}
	return o, nil
}

func (r *repo) UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status model.OrderStatus) error {
	const q = `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status)
	return err
}

func (r *repo) SetCancelled(ctx context.Context, tx *sql.Tx, id string, reason *string) error {
	const q = `
		UPDATE orders
		SET status = 'CANCELLED', cancel_reason = $2, updated_at = NOW()
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, reason)
	return err
}

func (r *repo) UpdateContact(ctx context.Context, tx *sql.Tx, id string, c model.Customer, d *model.DeliveryAddress) error {
	const q = `
		UPDATE orders
		SET customer_name = $2, customer_email = $3, customer_phone = $4,
		    delivery_street = $5, delivery_city = $6, delivery_province = $7, delivery_postal_code = $8,
		    updated_at = NOW()
		WHERE id = $1`
	var street, city, province, postal *string
	if d != nil {
		street, city, province, postal = &d.Street, &d.City, &d.Province, &d.PostalCode
	}
	_, err := tx.ExecContext(ctx, q, id, c.Name, c.Email, c.Phone, street, city, province, postal)
	return err
}

func (r *repo) SetPriority(ctx context.Context, tx *sql.Tx, id string, p model.Priority) error {
	const q = `UPDATE orders SET priority = $2, updated_at = NOW() WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, p)
	return err
}

func (r *repo) SetPaymentSlip(ctx context.Context, tx *sql.Tx, id string, slip *model.PaymentSlip, status model.PaymentStatus) error {
	const q = `
		UPDATE orders
		SET slip_url = $2, slip_content_type = $3, slip_size_bytes = $4, slip_uploaded_at = $5,
		    payment_status = $6, updated_at = NOW()
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, slip.URL, slip.ContentType, slip.SizeBytes, slip.UploadedAt, status)
	return err
}

func (r *repo) SetPaymentStatus(ctx context.Context, tx *sql.Tx, id string, status model.PaymentStatus) error {
	const q = `UPDATE orders SET payment_status = $2, updated_at = NOW() WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, status)
	return err
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]Summary, error) {
	const q = `
		SELECT id, number, type, status, payment_status, priority, total_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	return r.listSummaries(ctx, q, userID)
}

func (r *repo) ListByStatus(ctx context.Context, status *model.OrderStatus, limit, offset int) ([]Summary, error) {
	if status != nil {
		const q = `
			SELECT id, number, type, status, payment_status, priority, total_amount, created_at
			FROM orders
			WHERE status = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3`
		return r.listSummaries(ctx, q, *status, limit, offset)
	}
	const q = `
		SELECT id, number, type, status, payment_status, priority, total_amount, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	return r.listSummaries(ctx, q, limit, offset)
}

func (r *repo) listSummaries(ctx context.Context, q string, args ...any) ([]Summary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Number, &s.Type, &s.Status, &s.PaymentStatus, &s.Priority, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
