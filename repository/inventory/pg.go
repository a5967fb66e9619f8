package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

type pgLedger struct{ db *sql.DB }

func NewPG(db *sql.DB) Ledger { return &pgLedger{db: db} }

func (l *pgLedger) Reserve(ctx context.Context, productID, qty int64) error {
	// Guard: only decrement if sufficient. The single UPDATE is the
	// critical section; Postgres serializes writers on the row.
	const q = `
		UPDATE products
		SET available_quantity = available_quantity - $2
		WHERE id = $1
		AND available_quantity >= $2`
	res, err := l.db.ExecContext(ctx, q, productID, qty)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		if _, err := l.Record(ctx, productID); err != nil {
			return err
		}
		return ErrInsufficientStock
	}
	return nil
}

func (l *pgLedger) Release(ctx context.Context, productID, qty int64) (int64, error) {
	const q = `
		WITH prev AS (
			SELECT available_quantity AS before
			FROM products
			WHERE id = $1
			FOR UPDATE
		)
		UPDATE products
		SET available_quantity = LEAST(products.available_quantity + $2, products.total_quantity)
		FROM prev
		WHERE products.id = $1
		RETURNING prev.before, products.available_quantity`
	var before, after int64
	err := l.db.QueryRowContext(ctx, q, productID, qty).Scan(&before, &after)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	return after - before, nil
}

func (l *pgLedger) Record(ctx context.Context, productID int64) (*model.InventoryRecord, error) {
	const q = `
		SELECT id, total_quantity, available_quantity
		FROM products
		WHERE id = $1`
	rec := &model.InventoryRecord{}
	err := l.db.QueryRowContext(ctx, q, productID).Scan(&rec.ProductID, &rec.TotalQuantity, &rec.AvailableQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
