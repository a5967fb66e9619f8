package productrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

var ErrNotFound = errors.New("product not found")

type Repo interface {
	Create(ctx context.Context, p *model.Product) (int64, error)
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int64) (*model.Product, error)

	// Catalog snapshots consumed by the order core at build time.
	RentalSnapshot(ctx context.Context, id int64) (*model.RentalProduct, error)
	SaleSnapshot(ctx context.Context, id int64) (*model.SaleProduct, error)
	PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error)

	AddRentalStock(ctx context.Context, id int64, n int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, p *model.Product) (int64, error) {
	const q = `
		INSERT INTO products (name, category, kind, price, daily_rate, weekly_rate, total_quantity, available_quantity, stock)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$7,$8)
		RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		p.Name, p.Category, p.Kind, p.Price, p.DailyRate, p.WeeklyRate, p.TotalQuantity, p.Stock,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context) ([]model.Product, error) {
	const q = `
		SELECT id, name, category, kind, price, daily_rate, weekly_rate,
		       total_quantity, available_quantity, stock, created_at
		FROM products
		ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Kind, &p.Price, &p.DailyRate, &p.WeeklyRate,
			&p.TotalQuantity, &p.AvailableQuantity, &p.Stock, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Product, error) {
	const q = `
		SELECT id, name, category, kind, price, daily_rate, weekly_rate,
		       total_quantity, available_quantity, stock, created_at
		FROM products
		WHERE id = $1`
	var p model.Product
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Kind, &p.Price, &p.DailyRate, &p.WeeklyRate,
		&p.TotalQuantity, &p.AvailableQuantity, &p.Stock, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) RentalSnapshot(ctx context.Context, id int64) (*model.RentalProduct, error) {
	const q = `
		SELECT id, name, daily_rate, weekly_rate, total_quantity, available_quantity
		FROM products
		WHERE id = $1 AND kind = 'RENTAL'`
	var p model.RentalProduct
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.DailyRate, &p.WeeklyRate, &p.TotalQuantity, &p.AvailableQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) SaleSnapshot(ctx context.Context, id int64) (*model.SaleProduct, error) {
	const q = `
		SELECT id, name, price, stock
		FROM products
		WHERE id = $1 AND kind = 'SALE'`
	var p model.SaleProduct
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) PackageSnapshot(ctx context.Context, id int64) (*model.PackageProduct, error) {
	const q = `
		SELECT id, name, price
		FROM products
		WHERE id = $1 AND kind = 'PACKAGE'`
	var p model.PackageProduct
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) AddRentalStock(ctx context.Context, id int64, n int64) error {
	if n <= 0 {
		return errors.New("n must be > 0")
	}
	const q = `
		UPDATE products
		SET total_quantity = total_quantity + $2,
		    available_quantity = available_quantity + $2
		WHERE id = $1 AND kind = 'RENTAL'`
	res, err := r.db.ExecContext(ctx, q, id, n)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}
