package inventory

import (
	"context"
	"sync"

	"github.com/KasunInd27/CampQuest-sub000/model"
)

// MemoryLedger is an in-process Ledger used by dev runs without a
// database and by tests. One mutex serializes all reserve/release
// pairs, which is the whole concurrency contract.
type MemoryLedger struct {
	mu      sync.Mutex
	records map[int64]*model.InventoryRecord
}

func NewMemory() *MemoryLedger {
	return &MemoryLedger{records: make(map[int64]*model.InventoryRecord)}
}

// SetStock resets a product's fleet to quantity, all available.
func (m *MemoryLedger) SetStock(productID, quantity int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[productID] = &model.InventoryRecord{
		ProductID:         productID,
		TotalQuantity:     quantity,
		AvailableQuantity: quantity,
	}
}

func (m *MemoryLedger) Reserve(_ context.Context, productID, qty int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[productID]
	if !ok {
		return ErrProductNotFound
	}
	if rec.AvailableQuantity < qty {
		return ErrInsufficientStock
	}
	rec.AvailableQuantity -= qty
	return nil
}

func (m *MemoryLedger) Release(_ context.Context, productID, qty int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[productID]
	if !ok {
		return 0, ErrProductNotFound
	}
	after := rec.AvailableQuantity + qty
	if after > rec.TotalQuantity {
		after = rec.TotalQuantity
	}
	applied := after - rec.AvailableQuantity
	rec.AvailableQuantity = after
	return applied, nil
}

func (m *MemoryLedger) Record(_ context.Context, productID int64) (*model.InventoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	out := *rec
	return &out, nil
}
