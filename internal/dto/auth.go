package dto

import (
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

type LoginRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password"    validate:"required"`
}

type UserInfo struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Role       md.Role   `json:"role"`
	EmployeeID string    `json:"employee_id"`
}

type LoginResponse struct {
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    UserInfo `json:"user"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type RegisterUserRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Username   string  `json:"username"    validate:"required"`
	Password   string  `json:"password"    validate:"required,min=6"`
	Role       md.Role `json:"role"        validate:"omitempty,oneof=staff admin"`
}
