package cartrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

var ErrLineNotFound = errors.New("cart line not found")

// Repo persists cart lines keyed by an explicit cart key (the session
// or user key the caller passes in; never read from ambient state).
type Repo interface {
	Get(ctx context.Context, key string) (*model.Cart, error)
	UpsertLine(ctx context.Context, key string, line model.CartLine) error
	UpdateQuantity(ctx context.Context, key string, productID int64, lineType model.LineType, qty int64) error
	UpdateRentalDays(ctx context.Context, key string, productID int64, days int) error
	RemoveLine(ctx context.Context, key string, productID int64, lineType model.LineType) error
	Clear(ctx context.Context, key string) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Get(ctx context.Context, key string) (*model.Cart, error) {
	const q = `
		SELECT product_id, name, line_type, quantity, unit_price, weekly_rate, rental_days, updated_at
		FROM cart_lines
		WHERE cart_key = $1
		ORDER BY created_at, product_id`
	rows, err := r.db.QueryContext(ctx, q, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart := &model.Cart{Key: key}
	for rows.Next() {
		var l model.CartLine
		var updated sql.NullTime
		if err := rows.Scan(&l.ProductID, &l.Name, &l.LineType, &l.Quantity, &l.UnitPrice, &l.WeeklyRate, &l.RentalDays, &updated); err != nil {
			return nil, err
		}
		if updated.Valid && updated.Time.After(cart.UpdatedAt) {
			cart.UpdatedAt = updated.Time
		}
		cart.Lines = append(cart.Lines, l)
	}
	return cart, rows.Err()
}

func (r *repo) UpsertLine(ctx context.Context, key string, l model.CartLine) error {
	// One line per (cart, product, line type); adding again bumps quantity.
	const q = `
		INSERT INTO cart_lines (cart_key, product_id, name, line_type, quantity, unit_price, weekly_rate, rental_days)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (cart_key, product_id, line_type)
		DO UPDATE SET quantity    = cart_lines.quantity + EXCLUDED.quantity,
		              unit_price  = EXCLUDED.unit_price,
		              weekly_rate = EXCLUDED.weekly_rate,
		              rental_days = COALESCE(EXCLUDED.rental_days, cart_lines.rental_days),
		              updated_at  = NOW()`
	_, err := r.db.ExecContext(ctx, q, key, l.ProductID, l.Name, l.LineType, l.Quantity, l.UnitPrice, l.WeeklyRate, l.RentalDays)
	return err
}

func (r *repo) UpdateQuantity(ctx context.Context, key string, productID int64, lineType model.LineType, qty int64) error {
	if qty <= 0 {
		return r.RemoveLine(ctx, key, productID, lineType)
	}
	const q = `
		UPDATE cart_lines
		SET quantity = $4, updated_at = NOW()
		WHERE cart_key = $1 AND product_id = $2 AND line_type = $3`
	res, err := r.db.ExecContext(ctx, q, key, productID, lineType, qty)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (r *repo) UpdateRentalDays(ctx context.Context, key string, productID int64, days int) error {
	const q = `
		UPDATE cart_lines
		SET rental_days = $3, updated_at = NOW()
		WHERE cart_key = $1 AND product_id = $2 AND line_type = 'RENTAL'`
	res, err := r.db.ExecContext(ctx, q, key, productID, days)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (r *repo) RemoveLine(ctx context.Context, key string, productID int64, lineType model.LineType) error {
	const q = `
		DELETE FROM cart_lines
		WHERE cart_key = $1 AND product_id = $2 AND line_type = $3`
	res, err := r.db.ExecContext(ctx, q, key, productID, lineType)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrLineNotFound
	}
	return nil
}

func (r *repo) Clear(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE cart_key = $1`, key)
	return err
}
