package model

import "lotus/shared/model"

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldNotes     = "notes"
)

type Client struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
	Email     string `db:"email"`
	Notes     string `db:"notes"`
	model.Metadata
}
