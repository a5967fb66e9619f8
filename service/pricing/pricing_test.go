package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRentalDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day bills one day", day("2026-03-01"), day("2026-03-01"), 1},
		{"one day", day("2026-03-01"), day("2026-03-02"), 1},
		{"full week", day("2026-03-01"), day("2026-03-08"), 7},
		{"partial day rounds up", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := RentalDays(c.start, c.end)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestRentalDays_EndBeforeStart(t *testing.T) {
	_, err := RentalDays(day("2026-03-05"), day("2026-03-01"))
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPriceRentalLine_DailyRate(t *testing.T) {
	got, err := PriceRentalLine(1000, nil, 6, 1)
	require.NoError(t, err)
	require.Equal(t, 6000.0, got)

	got, err = PriceRentalLine(500, nil, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 3000.0, got)
}

func TestPriceRentalLine_WeeklyBreakpoint(t *testing.T) {
	weekly := 6000.0

	// below a week the daily rate applies even when a weekly rate exists
	got, err := PriceRentalLine(1000, &weekly, 6, 1)
	require.NoError(t, err)
	require.Equal(t, 6000.0, got)

	// exactly one week
	got, err = PriceRentalLine(1000, &weekly, 7, 1)
	require.NoError(t, err)
	require.Equal(t, 6000.0, got)

	// partial second week rounds up to two weeks
	got, err = PriceRentalLine(1000, &weekly, 10, 1)
	require.NoError(t, err)
	require.Equal(t, 12000.0, got)

	// quantity multiplies the weekly charge
	got, err = PriceRentalLine(1000, &weekly, 7, 3)
	require.NoError(t, err)
	require.Equal(t, 18000.0, got)
}

func TestPriceRentalLine_InvalidInput(t *testing.T) {
	_, err := PriceRentalLine(1000, nil, 0, 1)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = PriceRentalLine(1000, nil, 3, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}
