package model

import "time"

const (
	UsageTableName  = "referral_usages"
	UsageEntityName = "referral_usage"

	UsageFieldID            = "id"
	UsageFieldCodeID        = "code_id"
	UsageFieldClientID      = "client_id"
	UsageFieldReservationID = "reservation_id"
	UsageFieldAmount        = "amount"
	UsageFieldCreatedAt     = "created_at"

	// Backstop against concurrent double-redemption; the application-level
	// check alone is not race-safe.
	UsageUniqueConstraint = "referral_usages_code_id_client_id_key"
)

type ReferralUsage struct {
	ID            string    `db:"id"`
	CodeID        string    `db:"code_id"`
	ClientID      string    `db:"client_id"`
	ReservationID *string   `db:"reservation_id"`
	Amount        float64   `db:"amount"`
	CreatedAt     time.Time `db:"created_at"`
}
