package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "referral_codes"
	EntityName = "referral_code"

	FieldID              = "id"
	FieldCode            = "code"
	FieldOwnerClientID   = "owner_client_id"
	FieldDiscountPercent = "discount_percent"
	FieldMaxUses         = "max_uses"
	FieldCurrentUses     = "current_uses"
	FieldActive          = "active"
	FieldExpiresAt       = "expires_at"
)

type ReferralCode struct {
	ID              string     `db:"id"`
	Code            string     `db:"code"`
	OwnerClientID   string     `db:"owner_client_id"`
	DiscountPercent float64    `db:"discount_percent"`
	MaxUses         *int       `db:"max_uses"`
	CurrentUses     int        `db:"current_uses"`
	Active          bool       `db:"active"`
	ExpiresAt       *time.Time `db:"expires_at"`
	model.Metadata
}
