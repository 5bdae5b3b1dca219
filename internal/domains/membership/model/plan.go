package model

import "lotus/shared/model"

const (
	PlanTableName  = "membership_plans"
	PlanEntityName = "membership_plan"

	PlanFieldID           = "id"
	PlanFieldName         = "name"
	PlanFieldCredits      = "credits"
	PlanFieldPrice        = "price"
	PlanFieldDurationDays = "duration_days"
	PlanFieldActive       = "active"
)

type Plan struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Credits      int     `db:"credits"`
	Price        float64 `db:"price"`
	DurationDays int     `db:"duration_days"`
	Active       bool    `db:"active"`
	model.Metadata
}
