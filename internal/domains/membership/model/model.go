package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "membership_grants"
	EntityName = "membership_grant"

	FieldID           = "id"
	FieldClientID     = "client_id"
	FieldPlanID       = "plan_id"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldTotalCredits = "total_credits"
	FieldUsedCredits  = "used_credits"
	FieldStatus       = "status"
)

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

type Grant struct {
	ID           string    `db:"id"`
	ClientID     string    `db:"client_id"`
	PlanID       string    `db:"plan_id"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	TotalCredits int       `db:"total_credits"`
	UsedCredits  int       `db:"used_credits"`
	Status       string    `db:"status"`
	model.Metadata
}

// RemainingCredits is derived, never stored, so used + remaining always
// equals total.
func (g *Grant) RemainingCredits() int {
	return g.TotalCredits - g.UsedCredits
}
