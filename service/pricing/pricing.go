// Package pricing computes rental charges over date ranges.
// All functions are pure; callers across the codebase get identical
// results for identical inputs.
package pricing

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("days and quantity must be >= 1")
	ErrInvalidPeriod   = errors.New("end date before start date")
)

// RentalDays converts a date range into billable days.
// Partial days round up; equal dates bill the one-day minimum.
func RentalDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidPeriod
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// PriceRentalLine charges a rental line. When a weekly rate exists and
// the period reaches a full week, whole weeks are billed at the weekly
// rate (partial weeks round up to a full week).
func PriceRentalLine(dailyRate float64, weeklyRate *float64, days, quantity int) (float64, error) {
	if days < 1 || quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	q := float64(quantity)
	if weeklyRate != nil && days >= 7 {
		weeks := math.Ceil(float64(days) / 7)
		return weeks * *weeklyRate * q, nil
	}
	return float64(days) * dailyRate * q, nil
}
