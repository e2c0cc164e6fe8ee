package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentRecord is an assignment joined with its device, type and holder.
// Both log views are projected from slices of it.
type AssignmentRecord struct {
	ID           uuid.UUID        `db:"id"`
	UserID       uuid.UUID        `db:"user_id"`
	Username     string           `db:"username"`
	EmployeeID   string           `db:"employee_id"`
	DeviceID     uuid.UUID        `db:"device_id"`
	SerialNumber string           `db:"serial_number"`
	TabModel     string           `db:"tab_model"`
	Status       AssignmentStatus `db:"status"`
	IssuedAt     time.Time        `db:"issued_at"`
	ReturnedAt   *time.Time       `db:"returned_at"`
}

type LogFilter struct {
	UserID *uuid.UUID
	Search string
	Limit  int
}

type Possession struct {
	DeviceID     uuid.UUID    `db:"device_id"     json:"device__id"`
	SerialNumber string       `db:"serial_number" json:"device__serial_number"`
	TabTypeName  string       `db:"-"             json:"device__tab_type__name"`
	TabTypeID    uuid.UUID    `db:"tab_type_id"   json:"tab__id"`
	TabName      string       `db:"tab_name"      json:"tab__name"`
	Balance      int          `db:"-"             json:"current_balance"`
	Status       DeviceStatus `db:"status"        json:"status"`
	IssuedAt     *time.Time   `db:"issued_at"     json:"issued_at"`
}

type ActiveLoan struct {
	AssignmentID uuid.UUID    `db:"assignment_id" json:"assignment_id"`
	Username     string       `db:"username"      json:"user__username"`
	EmployeeID   string       `db:"employee_id"   json:"user__employee_id"`
	TabName      string       `db:"tab_name"      json:"tab__name"`
	SerialNumber string       `db:"serial_number" json:"device__serial_number"`
	DeviceStatus DeviceStatus `db:"device_status" json:"device_status"`
	IssuedAt     time.Time    `db:"issued_at"     json:"issued_at"`
	Balance      int          `db:"-"             json:"balance"`
}

type PendingReturn struct {
	DeviceID     uuid.UUID `db:"device_id"     json:"device__id"`
	SerialNumber string    `db:"serial_number" json:"device__serial_number"`
	TabName      string    `db:"tab_name"      json:"tab__name"`
	Username     string    `db:"username"      json:"user__username"`
	EmployeeID   string    `db:"employee_id"   json:"user__employee_id"`
	OTPCode      string    `db:"code"          json:"otp_code"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	ExpiresAt    time.Time `db:"expires_at"    json:"expires_at"`
	Expired      bool      `db:"-"             json:"expired"`
}

type ActivityRecord struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	Username      string    `db:"username"       json:"user__username"`
	EmployeeID    string    `db:"employee_id"    json:"user__employee_id"`
	TabName       string    `db:"tab_name"       json:"tab__name"`
	SerialNumber  string    `db:"serial_number"  json:"device__serial_number"`
	QuantityDelta int       `db:"quantity_delta" json:"quantity"`
	Action        Action    `db:"action"         json:"action"`
	Timestamp     time.Time `db:"timestamp"      json:"timestamp"`
}

type ActivityFilter struct {
	UserID *uuid.UUID
	Limit  int
}

type AuditRecord struct {
	AdminUsername string      `db:"admin_username" json:"admin__username"`
	ActionType    AuditAction `db:"action_type"    json:"action_type"`
	Description   string      `db:"description"    json:"description"`
	Timestamp     time.Time   `db:"timestamp"      json:"timestamp"`
}

type UsageStats struct {
	UsedToday     int `db:"used_today"      json:"used_today"`
	UsedThisMonth int `db:"used_this_month" json:"used_this_month"`
}
