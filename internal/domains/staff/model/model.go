package model

import (
	"time"

	"lotus/shared/model"
)

const (
	TableName  = "staff_accounts"
	EntityName = "staff_account"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleTherapist = "therapist"
	RoleFrontDesk = "front_desk"
)

type Staff struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	FullName  string     `db:"full_name"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}
