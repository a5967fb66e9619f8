// Package inventory tracks rentable stock. Reserve and release are
// atomic per product; a reservation either fully applies or leaves no
// trace.
package inventory

import (
	"context"
	"errors"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrProductNotFound   = errors.New("product not found")
)

type Ledger interface {
	// Reserve decrements available stock. Fails without side effect
	// when fewer than qty units remain.
	Reserve(ctx context.Context, productID, qty int64) error

	// Release returns units to the available pool, clamped at the
	// product's total. The returned count is what was actually
	// re-added; callers log when it is short of qty.
	Release(ctx context.Context, productID, qty int64) (int64, error)

	Record(ctx context.Context, productID int64) (*model.InventoryRecord, error)
}
