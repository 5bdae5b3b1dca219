package model

import "lotus/shared/model"

const (
	TableName  = "spa_services"
	EntityName = "spa_service"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldImage           = "image"
	FieldActive          = "active"
)

type Service struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	Image           string  `db:"image"`
	Active          bool    `db:"active"`
	model.Metadata
}
