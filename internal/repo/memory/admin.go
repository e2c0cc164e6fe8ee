package memory

import (
	"context"
	"time"

	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
)

func (r *Repository) CancelPendingReturn(
	_ context.Context,
	ref string,
	adminID uuid.UUID,
	now time.Time,
) (*md.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findDevice(ref)
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}

	d := cloneDevice(stored)
	if err := lifecycle.CancelPendingReturn(&d); err != nil {
		return nil, err
	}

	*stored = d
	delete(r.challenges, d.ID)
	r.appendAudit(md.NewAudit(adminID, md.AuditReturnCancelled, now, "Cancelled pending return of %s", d.SerialNumber))

	res := cloneDevice(stored)
	return &res, nil
}

func (r *Repository) ForceReturn(
	_ context.Context,
	ref string,
	adminID uuid.UUID,
	now time.Time,
) (*md.ReturnResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findDevice(ref)
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}

	d := cloneDevice(stored)
	if err := lifecycle.ForceReturn(&d); err != nil {
		return nil, err
	}

	res, err := r.closeReturn(stored, d, now)
	if err != nil {
		return nil, err
	}

	delete(r.challenges, d.ID)
	r.appendAudit(md.NewAudit(adminID, md.AuditForceReturn, now, "Force returned %s", d.SerialNumber))
	return res, nil
}

func (r *Repository) SetRepair(
	_ context.Context,
	ref string,
	repair bool,
	adminID uuid.UUID,
	now time.Time,
) (*md.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findDevice(ref)
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}

	d := cloneDevice(stored)
	wasHeld, err := lifecycle.SetRepair(&d, repair)
	if err != nil {
		return nil, err
	}

	if wasHeld {
		if _, err = r.closeReturn(stored, d, now); err != nil {
			return nil, err
		}
		delete(r.challenges, d.ID)
	} else {
		*stored = d
	}

	state := "cleared repair on"
	if repair {
		state = "sent to repair"
	}
	r.appendAudit(md.NewAudit(adminID, md.AuditRepairStatus, now, "Device %s %s", d.SerialNumber, state))

	res := cloneDevice(stored)
	return &res, nil
}

func (r *Repository) ProvisionDevice(
	_ context.Context,
	serial string,
	tabID, adminID uuid.UUID,
	now time.Time,
) (*md.ProvisionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabTypes[tabID]
	if !ok {
		return nil, lifecycle.ErrTabTypeNotFound
	}

	for _, d := range r.devices {
		if d.SerialNumber == serial {
			return nil, repo.ErrAlreadyExists
		}
	}

	d := &md.Device{
		ID:           uuid.New(),
		SerialNumber: serial,
		TabTypeID:    tabID,
		Status:       md.StatusAvailable,
	}
	r.devices[d.ID] = d
	lifecycle.Provision(t)
	r.appendAudit(md.NewAudit(
		adminID, md.AuditInventoryUpdate, now,
		"Provisioned %s as %s, stock now %d", serial, t.Name, t.StockRemaining,
	))

	return &md.ProvisionResult{Device: *d, TabName: t.Name, NewStock: t.StockRemaining}, nil
}

func (r *Repository) UpsertTabType(
	_ context.Context,
	in md.TabTypeInput,
	adminID uuid.UUID,
	now time.Time,
) (*md.TabType, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t := r.findTabTypeByName(in.Name); t != nil {
		prev := t.DailyLimitPerUser
		t.DailyLimitPerUser = in.DailyLimitPerUser
		if in.LowStockThreshold != nil {
			t.LowStockThreshold = *in.LowStockThreshold
		}
		r.appendAudit(md.NewAudit(
			adminID, md.AuditLimitChange, now,
			"Daily limit of %s changed from %d to %d", t.Name, prev, t.DailyLimitPerUser,
		))
		cp := *t
		return &cp, false, nil
	}

	t := &md.TabType{
		ID:                uuid.New(),
		Name:              in.Name,
		DailyLimitPerUser: in.DailyLimitPerUser,
		LowStockThreshold: md.DefaultLowStockThreshold,
		CreatedAt:         now,
	}
	if in.LowStockThreshold != nil {
		t.LowStockThreshold = *in.LowStockThreshold
	}
	r.tabTypes[t.ID] = t
	r.appendAudit(md.NewAudit(
		adminID, md.AuditInventoryUpdate, now,
		"Added tab type %s with daily limit %d", t.Name, t.DailyLimitPerUser,
	))

	cp := *t
	return &cp, true, nil
}

func (r *Repository) CreateAuditTrail(_ context.Context, a *md.AuditTrail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendAudit(a)
	return nil
}
