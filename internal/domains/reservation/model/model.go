package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                = "id"
	FieldClientID          = "client_id"
	FieldGuestName         = "guest_name"
	FieldGuestEmail        = "guest_email"
	FieldGuestPhone        = "guest_phone"
	FieldReservationDate   = "reservation_date"
	FieldStartTime         = "start_time"
	FieldEndTime           = "end_time"
	FieldStatus            = "status"
	FieldPaymentStatus     = "payment_status"
	FieldTotalPrice        = "total_price"
	FieldTotalDuration     = "total_duration_minutes"
	FieldServiceID         = "service_id"
	FieldReferralUsageID   = "referral_usage_id"
	FieldMembershipGrantID = "membership_grant_id"
	FieldClientNotes       = "client_notes"
	FieldAdminNotes        = "admin_notes"
)

const (
	StatusDraft      = "draft"
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Reservation occupies the half-open interval [StartTime, EndTime) on
// ReservationDate. ServiceID is the legacy single-service mode, populated
// only when the reservation has no line items.
type Reservation struct {
	ID                   string    `db:"id"`
	ClientID             *string   `db:"client_id"`
	GuestName            string    `db:"guest_name"`
	GuestEmail           string    `db:"guest_email"`
	GuestPhone           string    `db:"guest_phone"`
	ReservationDate      time.Time `db:"reservation_date"`
	StartTime            time.Time `db:"start_time"`
	EndTime              time.Time `db:"end_time"`
	Status               string    `db:"status"`
	PaymentStatus        string    `db:"payment_status"`
	TotalPrice           float64   `db:"total_price"`
	TotalDurationMinutes int       `db:"total_duration_minutes"`
	ServiceID            *string   `db:"service_id"`
	ReferralUsageID      *string   `db:"referral_usage_id"`
	MembershipGrantID    *string   `db:"membership_grant_id"`
	ClientNotes          string    `db:"client_notes"`
	AdminNotes           string    `db:"admin_notes"`
	model.Metadata
}

// IsTerminal reports whether the status admits no further normal transitions.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled || status == StatusNoShow
}

// BlocksSlot reports whether a reservation in this status occupies its time
// slot for conflict detection. Drafts, cancellations and no-shows do not.
func BlocksSlot(status string) bool {
	return status != StatusCancelled && status != StatusNoShow && status != StatusDraft
}
