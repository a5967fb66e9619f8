package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReserve_DecrementsAvailable(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetStock(1, 5)

	require.NoError(t, m.Reserve(ctx, 1, 2))

	rec, err := m.Record(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), rec.AvailableQuantity)
	require.Equal(t, int64(5), rec.TotalQuantity)
}

func TestReserve_InsufficientLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetStock(1, 2)

	err := m.Reserve(ctx, 1, 3)
	require.ErrorIs(t, err, ErrInsufficientStock)

	rec, err := m.Record(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), rec.AvailableQuantity)
}

func TestReserve_UnknownProduct(t *testing.T) {
	m := NewMemory()
	err := m.Reserve(context.Background(), 99, 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestRelease_ClampsAtTotal(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetStock(1, 5)
	require.NoError(t, m.Reserve(ctx, 1, 2))

	// over-release: only the 2 outstanding units can come back
	applied, err := m.Release(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), applied)

	rec, err := m.Record(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), rec.AvailableQuantity)
}

func TestConcurrentReserves_LastUnit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetStock(7, 1)

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- m.Reserve(ctx, 7, 1)
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, ErrInsufficientStock)
			insufficient++
		}
	}
	require.Equal(t, 1, ok, "exactly one reservation wins the last unit")
	require.Equal(t, workers-1, insufficient)

	rec, err := m.Record(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(0), rec.AvailableQuantity)
}

func TestConservation_RandomishSequence(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.SetStock(3, 4)

	steps := []struct {
		reserve bool
		qty     int64
	}{
		{true, 2}, {true, 2}, {false, 1}, {true, 1}, {false, 3}, {false, 5}, {true, 4},
	}
	for _, s := range steps {
		if s.reserve {
			_ = m.Reserve(ctx, 3, s.qty)
		} else {
			_, _ = m.Release(ctx, 3, s.qty)
		}
		rec, err := m.Record(ctx, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rec.AvailableQuantity, int64(0))
		require.LessOrEqual(t, rec.AvailableQuantity, rec.TotalQuantity)
	}
}
