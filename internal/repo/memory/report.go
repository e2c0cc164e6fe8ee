package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

func (r *Repository) GetDevice(_ context.Context, ref string) (*md.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.findDevice(ref)
	if d == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}
	res := cloneDevice(d)
	return &res, nil
}

func (r *Repository) ListTabTypes(_ context.Context) ([]md.TabType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]md.TabType, 0, len(r.tabTypes))
	for _, t := range r.tabTypes {
		res = append(res, *t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r *Repository) ListPossessions(_ context.Context, userID uuid.UUID) ([]md.Possession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]md.Possession, 0)
	for _, d := range r.devices {
		if d.AssignedTo == nil || *d.AssignedTo != userID {
			continue
		}
		c := cloneDevice(d)
		res = append(res, md.Possession{
			DeviceID:     d.ID,
			SerialNumber: d.SerialNumber,
			TabTypeID:    d.TabTypeID,
			TabName:      r.tabTypes[d.TabTypeID].Name,
			Status:       d.Status,
			IssuedAt:     c.IssuedAt,
		})
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].IssuedAt.Equal(*res[j].IssuedAt) {
			return res[i].IssuedAt.After(*res[j].IssuedAt)
		}
		return res[i].SerialNumber < res[j].SerialNumber
	})
	return res, nil
}

func (r *Repository) ListActiveLoans(_ context.Context) ([]md.ActiveLoan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]md.ActiveLoan, 0)
	for _, a := range r.assignments {
		if a.Status != md.AssignmentActive {
			continue
		}
		d := r.devices[a.DeviceID]
		username, employeeID := r.username(a.UserID)
		res = append(res, md.ActiveLoan{
			AssignmentID: a.ID,
			Username:     username,
			EmployeeID:   employeeID,
			TabName:      r.tabTypes[d.TabTypeID].Name,
			SerialNumber: d.SerialNumber,
			DeviceStatus: d.Status,
			IssuedAt:     a.IssuedAt,
		})
	}

	sort.Slice(res, func(i, j int) bool { return res[i].IssuedAt.After(res[j].IssuedAt) })
	return res, nil
}

func (r *Repository) ListPendingReturns(_ context.Context) ([]md.PendingReturn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]md.PendingReturn, 0)
	for _, d := range r.devices {
		if d.Status != md.StatusPendingReturn || d.AssignedTo == nil {
			continue
		}
		ch, ok := r.challenges[d.ID]
		if !ok || ch.Consumed {
			continue
		}
		username, employeeID := r.username(*d.AssignedTo)
		res = append(res, md.PendingReturn{
			DeviceID:     d.ID,
			SerialNumber: d.SerialNumber,
			TabName:      r.tabTypes[d.TabTypeID].Name,
			Username:     username,
			EmployeeID:   employeeID,
			OTPCode:      ch.Code,
			CreatedAt:    ch.CreatedAt,
			ExpiresAt:    ch.ExpiresAt,
		})
	}

	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *Repository) ListActivity(_ context.Context, f md.ActivityFilter) ([]md.ActivityRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]md.ActivityRecord, 0)
	for i := range r.events {
		e := &r.events[i]
		if f.UserID != nil && e.UserID != *f.UserID {
			continue
		}
		username, employeeID := r.username(e.UserID)
		res = append(res, md.ActivityRecord{
			ID:            e.ID,
			Username:      username,
			EmployeeID:    employeeID,
			TabName:       r.tabTypes[e.TabTypeID].Name,
			SerialNumber:  r.devices[e.DeviceID].SerialNumber,
			QuantityDelta: e.QuantityDelta,
			Action:        e.Action,
			Timestamp:     e.Timestamp,
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].Timestamp.Equal(res[j].Timestamp) {
			return res[i].Timestamp.After(res[j].Timestamp)
		}
		return res[i].QuantityDelta < res[j].QuantityDelta
	})

	if f.Limit > 0 && len(res) > f.Limit {
		res = res[:f.Limit]
	}
	return res, nil
}

func (r *Repository) ListAuditTrails(_ context.Context, limit int) ([]md.AuditRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]md.AuditRecord, 0, len(r.audits))
	for i := len(r.audits) - 1; i >= 0; i-- {
		a := &r.audits[i]
		username, _ := r.username(a.AdminID)
		res = append(res, md.AuditRecord{
			AdminUsername: username,
			ActionType:    a.ActionType,
			Description:   a.Description,
			Timestamp:     a.Timestamp,
		})
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.After(res[j].Timestamp) })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (r *Repository) ListAssignmentRecords(_ context.Context, f md.LogFilter) ([]md.AssignmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(f.Search)
	res := make([]md.AssignmentRecord, 0)
	for _, a := range r.assignments {
		if f.UserID != nil && a.UserID != *f.UserID {
			continue
		}

		d := r.devices[a.DeviceID]
		username, employeeID := r.username(a.UserID)
		rec := md.AssignmentRecord{
			ID:           a.ID,
			UserID:       a.UserID,
			Username:     username,
			EmployeeID:   employeeID,
			DeviceID:     a.DeviceID,
			SerialNumber: d.SerialNumber,
			TabModel:     r.tabTypes[d.TabTypeID].Name,
			Status:       a.Status,
			IssuedAt:     a.IssuedAt,
		}
		if a.ReturnedAt != nil {
			at := *a.ReturnedAt
			rec.ReturnedAt = &at
		}

		if search != "" && !matches(search, rec.EmployeeID, rec.Username, rec.SerialNumber, rec.TabModel, string(rec.Status)) {
			continue
		}
		res = append(res, rec)
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].IssuedAt.Equal(res[j].IssuedAt) {
			return res[i].IssuedAt.After(res[j].IssuedAt)
		}
		return res[i].ID.String() < res[j].ID.String()
	})

	if f.Limit > 0 && len(res) > f.Limit {
		res = res[:f.Limit]
	}
	return res, nil
}

func matches(search string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func (r *Repository) UsageStats(_ context.Context, dayStart, monthStart time.Time) (*md.UsageStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := &md.UsageStats{}
	for i := range r.events {
		e := &r.events[i]
		if e.QuantityDelta <= 0 {
			continue
		}
		if !e.Timestamp.Before(dayStart) {
			res.UsedToday++
		}
		if !e.Timestamp.Before(monthStart) {
			res.UsedThisMonth++
		}
	}
	return res, nil
}
