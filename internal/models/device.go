package models

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	StatusAvailable     DeviceStatus = "available"
	StatusAssigned      DeviceStatus = "assigned"
	StatusPendingReturn DeviceStatus = "pending_return"
	StatusRepair        DeviceStatus = "repair"
)

type TabType struct {
	ID                uuid.UUID `db:"id"                  json:"id"`
	Name              string    `db:"name"                json:"name"`
	DailyLimitPerUser int       `db:"daily_limit_per_user" json:"daily_limit_per_user"`
	StockRemaining    int       `db:"stock_remaining"     json:"stock_remaining"`
	TotalProvisioned  int       `db:"total_provisioned"   json:"total_provisioned"`
	LowStockThreshold int       `db:"low_stock_threshold" json:"low_stock_threshold"`
	CreatedAt         time.Time `db:"created_at"          json:"created_at"`
}

type Device struct {
	ID           uuid.UUID    `db:"id"            json:"id"`
	SerialNumber string       `db:"serial_number" json:"serial_number"`
	TabTypeID    uuid.UUID    `db:"tab_type_id"   json:"tab_type_id"`
	Status       DeviceStatus `db:"status"        json:"status"`
	AssignedTo   *uuid.UUID   `db:"assigned_to"   json:"assigned_to"`
	IssuedAt     *time.Time   `db:"issued_at"     json:"issued_at"`
}

type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentReturned AssignmentStatus = "returned"
)

type Assignment struct {
	ID         uuid.UUID        `db:"id"          json:"id"`
	DeviceID   uuid.UUID        `db:"device_id"   json:"device_id"`
	UserID     uuid.UUID        `db:"user_id"     json:"user_id"`
	IssuedAt   time.Time        `db:"issued_at"   json:"issued_at"`
	ReturnedAt *time.Time       `db:"returned_at" json:"returned_at"`
	Status     AssignmentStatus `db:"status"      json:"status"`
}

type ReturnChallenge struct {
	DeviceID  uuid.UUID `db:"device_id"  json:"device_id"`
	Code      string    `db:"code"       json:"code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	Consumed  bool      `db:"consumed"   json:"consumed"`
}

// CheckoutResult describes a committed checkout.
type CheckoutResult struct {
	AssignmentID   uuid.UUID `json:"assignment_id"`
	Device         Device    `json:"device"`
	TabName        string    `json:"tab_name"`
	RemainingStock int       `json:"remaining_stock"`
	IssuedAt       time.Time `json:"issued_at"`
}

// ReturnResult describes a committed return of any kind.
type ReturnResult struct {
	AssignmentID   uuid.UUID `json:"assignment_id"`
	Device         Device    `json:"device"`
	HolderID       uuid.UUID `json:"holder_id"`
	RemainingStock int       `json:"remaining_stock"`
	ReturnedAt     time.Time `json:"returned_at"`
}

// ProvisionResult describes a newly registered device.
type ProvisionResult struct {
	Device   Device `json:"device"`
	TabName  string `json:"tab_name"`
	NewStock int    `json:"new_stock"`
}

const DefaultLowStockThreshold = 10

// TabTypeInput creates a type by name or updates its limits.
type TabTypeInput struct {
	Name              string
	DailyLimitPerUser int
	LowStockThreshold *int
}
