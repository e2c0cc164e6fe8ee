package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCheckout Action = "checkout"
	ActionLog      Action = "log"
	ActionReturn   Action = "return"
)

type ActivityEvent struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	UserID        uuid.UUID `db:"user_id"        json:"user_id"`
	TabTypeID     uuid.UUID `db:"tab_type_id"    json:"tab_type_id"`
	DeviceID      uuid.UUID `db:"device_id"      json:"device_id"`
	AssignmentID  uuid.UUID `db:"assignment_id"  json:"assignment_id"`
	QuantityDelta int       `db:"quantity_delta" json:"quantity_delta"`
	Action        Action    `db:"action"         json:"action"`
	Timestamp     time.Time `db:"timestamp"      json:"timestamp"`
}

type AuditAction string

const (
	AuditInventoryUpdate AuditAction = "Inventory Update"
	AuditLimitChange     AuditAction = "Limit Change"
	AuditRepairStatus    AuditAction = "Repair Status"
	AuditReturnCancelled AuditAction = "Return Cancelled"
	AuditForceReturn     AuditAction = "Force Return"
	AuditDirectReturn    AuditAction = "Direct Return"
	AuditReturnInitiated AuditAction = "Return Initiated"
	AuditExportArchived  AuditAction = "Export Archived"
)

type AuditTrail struct {
	ID          uuid.UUID   `db:"id"          json:"id"`
	AdminID     uuid.UUID   `db:"admin_id"    json:"admin_id"`
	ActionType  AuditAction `db:"action_type" json:"action_type"`
	Description string      `db:"description" json:"description"`
	Timestamp   time.Time   `db:"timestamp"   json:"timestamp"`
}

// NewAudit builds an audit row. A nil admin id yields nil.
func NewAudit(adminID uuid.UUID, action AuditAction, at time.Time, format string, args ...any) *AuditTrail {
	if adminID == uuid.Nil {
		return nil
	}
	return &AuditTrail{
		AdminID:     adminID,
		ActionType:  action,
		Description: fmt.Sprintf(format, args...),
		Timestamp:   at,
	}
}
