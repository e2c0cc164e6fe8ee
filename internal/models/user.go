package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

type User struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	EmployeeID string    `db:"employee_id" json:"employee_id"`
	Username   string    `db:"username"    json:"username"`
	Password   string    `db:"password"    json:"-"`
	Role       Role      `db:"role"        json:"role"`
	Status     string    `db:"status"      json:"status"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
