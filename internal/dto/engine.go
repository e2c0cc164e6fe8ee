package dto

import (
	"time"

	"github.com/google/uuid"
)

// DeviceRequest addresses a device by id or serial number.
type DeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

type AssignResponse struct {
	Message        string    `json:"message"`
	AssignmentID   uuid.UUID `json:"assignment_id"`
	RemainingStock int       `json:"remaining_stock"`
}

type CheckInRequest struct {
	TabID      uuid.UUID `json:"tab_id"      validate:"required"`
	Action     string    `json:"action"`
	EmployeeID string    `json:"employee_id"`
}

type CheckInResponse struct {
	Message        string    `json:"message"`
	RemainingStock int       `json:"remaining_stock"`
	Timestamp      time.Time `json:"timestamp"`
}

type TabTypeResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	DailyLimitPerUser int       `json:"daily_limit_per_user"`
	StockRemaining    int       `json:"stock_remaining"`
}

type VerifyReturnRequest struct {
	DeviceID  string `json:"device_id" validate:"required"`
	OTPCode   string `json:"otp_code"  validate:"required"`
	Condition string `json:"condition"`
}

type VerifyReturnResponse struct {
	Success bool `json:"success"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
