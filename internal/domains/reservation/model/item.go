package model

import "time"

const (
	ItemTableName  = "reservation_items"
	ItemEntityName = "reservation_item"

	ItemFieldID              = "id"
	ItemFieldReservationID   = "reservation_id"
	ItemFieldServiceID       = "service_id"
	ItemFieldKind            = "kind"
	ItemFieldUnitPrice       = "unit_price"
	ItemFieldDurationMinutes = "duration_minutes"
	ItemFieldNotes           = "notes"
	ItemFieldCreatedAt       = "created_at"
)

const (
	ItemKindMain  = "main"
	ItemKindAddon = "addon"
)

// ReservationItem is one service or add-on inside a reservation. Price and
// duration are snapshotted from the catalog at booking time and never
// recomputed.
type ReservationItem struct {
	ID              string    `db:"id"`
	ReservationID   string    `db:"reservation_id"`
	ServiceID       string    `db:"service_id"`
	Kind            string    `db:"kind"`
	UnitPrice       float64   `db:"unit_price"`
	DurationMinutes int       `db:"duration_minutes"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
}
