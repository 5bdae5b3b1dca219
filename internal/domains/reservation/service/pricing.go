package service

import (
	"lotus/internal/domains/reservation/model"
	"lotus/shared"
)

// Totals is the normalized pricing result every booking path resolves to
// before any business logic runs.
type Totals struct {
	Price           float64
	DurationMinutes int
}

// Aggregate sums snapshotted prices and durations over the line items. An
// empty list yields zero totals, which is the legacy single-service fallback
// signal for callers.
func Aggregate(items []model.ReservationItem) Totals {
	var totals Totals

	for _, item := range items {
		totals.Price += item.UnitPrice
		totals.DurationMinutes += item.DurationMinutes
	}

	totals.Price = shared.RoundCurrency(totals.Price)

	return totals
}
