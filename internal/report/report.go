// Package report projects assignment and activity records into the log views
// served by the API. Every function is pure; callers supply records in any
// order and get the same rows back.
package report

import (
	"sort"
	"time"

	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

type EventKind string

const (
	CheckedOut EventKind = "Checked Out"
	Returned   EventKind = "Returned"
)

// ClassicRow is one assignment with its issued and returned columns.
type ClassicRow struct {
	ID           uuid.UUID           `json:"id"`
	Username     string              `json:"username"`
	EmployeeID   string              `json:"employee_id"`
	SerialNumber string              `json:"serial_number"`
	TabModel     string              `json:"tab_model"`
	Status       md.AssignmentStatus `json:"status"`
	IssuedAt     time.Time           `json:"issued_at"`
	ReturnedAt   *time.Time          `json:"returned_at"`
}

// DetailedRow is one timestamped event of an assignment.
type DetailedRow struct {
	ID           string    `json:"id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	ActionType   EventKind `json:"action_type"`
	EventTime    time.Time `json:"event_time"`
	Username     string    `json:"username"`
	EmployeeID   string    `json:"employee_id"`
	SerialNumber string    `json:"serial_number"`
	TabModel     string    `json:"tab_model"`
}

type HistoryRow struct {
	TabName      string    `json:"tab_name"`
	SerialNumber string    `json:"serial_number"`
	Action       string    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
}

// Classic returns one row per assignment, newest issue first.
func Classic(records []md.AssignmentRecord) []ClassicRow {
	rows := make([]ClassicRow, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, ClassicRow{
			ID:           r.ID,
			Username:     r.Username,
			EmployeeID:   r.EmployeeID,
			SerialNumber: r.SerialNumber,
			TabModel:     r.TabModel,
			Status:       r.Status,
			IssuedAt:     r.IssuedAt,
			ReturnedAt:   r.ReturnedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].IssuedAt.Equal(rows[j].IssuedAt) {
			return rows[i].IssuedAt.After(rows[j].IssuedAt)
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})
	return rows
}

// Detailed expands each assignment into a Checked Out row and, once closed,
// a Returned row. Rows are sorted by event time descending; ties are broken
// by assignment id and then by action.
func Detailed(records []md.AssignmentRecord) []DetailedRow {
	rows := make([]DetailedRow, 0, len(records)*2)
	for i := range records {
		r := &records[i]
		rows = append(rows, detailedRow(r, CheckedOut, r.IssuedAt))
		if r.Status == md.AssignmentReturned && r.ReturnedAt != nil {
			rows = append(rows, detailedRow(r, Returned, *r.ReturnedAt))
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.EventTime.Equal(b.EventTime) {
			return a.EventTime.After(b.EventTime)
		}
		if a.AssignmentID != b.AssignmentID {
			return a.AssignmentID.String() < b.AssignmentID.String()
		}
		return a.ActionType < b.ActionType
	})
	return rows
}

func detailedRow(r *md.AssignmentRecord, kind EventKind, at time.Time) DetailedRow {
	suffix := "-out"
	if kind == Returned {
		suffix = "-in"
	}

	return DetailedRow{
		ID:           r.ID.String() + suffix,
		AssignmentID: r.ID,
		ActionType:   kind,
		EventTime:    at,
		Username:     r.Username,
		EmployeeID:   r.EmployeeID,
		SerialNumber: r.SerialNumber,
		TabModel:     r.TabModel,
	}
}

// History renders a user's activity feed with the labels shown to staff.
func History(events []md.ActivityRecord) []HistoryRow {
	rows := make([]HistoryRow, 0, len(events))
	for i := range events {
		e := &events[i]
		action := "Logged"
		if e.QuantityDelta < 0 {
			action = "Returned"
		}
		rows = append(rows, HistoryRow{
			TabName:      e.TabName,
			SerialNumber: e.SerialNumber,
			Action:       action,
			Timestamp:    e.Timestamp,
		})
	}
	return rows
}
