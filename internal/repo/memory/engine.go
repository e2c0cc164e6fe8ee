package memory

import (
	"context"
	"sort"
	"time"

	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

func cloneDevice(d *md.Device) md.Device {
	cp := *d
	if d.AssignedTo != nil {
		id := *d.AssignedTo
		cp.AssignedTo = &id
	}
	if d.IssuedAt != nil {
		at := *d.IssuedAt
		cp.IssuedAt = &at
	}
	return cp
}

func (r *Repository) Checkout(
	_ context.Context,
	ref string,
	userID uuid.UUID,
	dayStart, now time.Time,
) (*md.CheckoutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findDevice(ref)
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}

	d := cloneDevice(stored)
	if err := lifecycle.Checkout(&d, userID, now); err != nil {
		return nil, err
	}

	return r.assign(stored, d, userID, dayStart, now, md.ActionCheckout)
}

func (r *Repository) LogUsage(
	_ context.Context,
	tabID, userID uuid.UUID,
	dayStart, now time.Time,
) (*md.CheckoutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return nil, lifecycle.ErrUserNotFound
	}

	st, ok := r.tabTypes[tabID]
	if !ok {
		return nil, lifecycle.ErrTabTypeNotFound
	}

	t := *st
	if err := lifecycle.Reserve(&t, r.usedSince(userID, tabID, dayStart)); err != nil {
		return nil, err
	}

	var stored *md.Device
	for _, d := range r.devices {
		if d.TabTypeID != tabID || d.Status != md.StatusAvailable {
			continue
		}
		if stored == nil || d.SerialNumber < stored.SerialNumber {
			stored = d
		}
	}
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotAvailable
	}

	d := cloneDevice(stored)
	if err := lifecycle.Checkout(&d, userID, now); err != nil {
		return nil, err
	}

	return r.assign(stored, d, userID, dayStart, now, md.ActionLog)
}

// assign reserves stock for the already transitioned copy d and commits it
// together with the assignment and its event.
func (r *Repository) assign(
	stored *md.Device,
	d md.Device,
	userID uuid.UUID,
	dayStart, now time.Time,
	action md.Action,
) (*md.CheckoutResult, error) {
	if _, ok := r.users[userID]; !ok {
		return nil, lifecycle.ErrUserNotFound
	}

	st, ok := r.tabTypes[d.TabTypeID]
	if !ok {
		return nil, lifecycle.ErrTabTypeNotFound
	}

	t := *st
	if err := lifecycle.Reserve(&t, r.usedSince(userID, t.ID, dayStart)); err != nil {
		return nil, err
	}

	a := &md.Assignment{
		ID:       uuid.New(),
		DeviceID: d.ID,
		UserID:   userID,
		IssuedAt: now,
		Status:   md.AssignmentActive,
	}

	*stored = d
	*st = t
	r.assignments[a.ID] = a
	r.appendEvent(userID, &d, a.ID, 1, action, now)

	return &md.CheckoutResult{
		AssignmentID:   a.ID,
		Device:         cloneDevice(stored),
		TabName:        t.Name,
		RemainingStock: t.StockRemaining,
		IssuedAt:       now,
	}, nil
}

func (r *Repository) ReturnDirect(
	_ context.Context,
	tabID, userID, adminID uuid.UUID,
	now time.Time,
) (*md.ReturnResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, lifecycle.ErrUserNotFound
	}

	t, ok := r.tabTypes[tabID]
	if !ok {
		return nil, lifecycle.ErrTabTypeNotFound
	}

	held := make([]*md.Device, 0)
	for _, d := range r.devices {
		if d.TabTypeID == tabID && d.AssignedTo != nil && *d.AssignedTo == userID {
			held = append(held, d)
		}
	}
	if len(held) == 0 {
		return nil, lifecycle.ErrNothingToReturn
	}

	sort.Slice(held, func(i, j int) bool {
		if !held[i].IssuedAt.Equal(*held[j].IssuedAt) {
			return held[i].IssuedAt.Before(*held[j].IssuedAt)
		}
		return held[i].SerialNumber < held[j].SerialNumber
	})

	stored := held[0]
	d := cloneDevice(stored)
	if err := lifecycle.ForceReturn(&d); err != nil {
		return nil, err
	}

	res, err := r.closeReturn(stored, d, now)
	if err != nil {
		return nil, err
	}

	delete(r.challenges, d.ID)
	r.appendAudit(md.NewAudit(
		adminID, md.AuditDirectReturn, now,
		"Returned %s (%s) for %s", d.SerialNumber, t.Name, u.EmployeeID,
	))
	return res, nil
}

// closeReturn commits a released copy d, closes its assignment, returns
// stock and records the event. Nothing is written when it fails.
func (r *Repository) closeReturn(stored *md.Device, d md.Device, now time.Time) (*md.ReturnResult, error) {
	a := r.activeAssignment(d.ID)
	if a == nil {
		return nil, lifecycle.ErrDeviceNotAssigned
	}

	st, ok := r.tabTypes[d.TabTypeID]
	if !ok {
		return nil, lifecycle.ErrTabTypeNotFound
	}

	*stored = d
	lifecycle.Release(st)
	a.Status = md.AssignmentReturned
	returned := now
	a.ReturnedAt = &returned
	r.appendEvent(a.UserID, &d, a.ID, -1, md.ActionReturn, now)

	return &md.ReturnResult{
		AssignmentID:   a.ID,
		Device:         cloneDevice(stored),
		HolderID:       a.UserID,
		RemainingStock: st.StockRemaining,
		ReturnedAt:     now,
	}, nil
}

func (r *Repository) InitiateReturn(
	_ context.Context,
	ref string,
	p md.Principal,
	ch md.ReturnChallenge,
) (*md.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findDevice(ref)
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}

	d := cloneDevice(stored)
	if err := lifecycle.InitiateReturn(&d, p); err != nil {
		return nil, err
	}

	*stored = d
	ch.DeviceID = d.ID
	ch.Consumed = false
	r.challenges[d.ID] = &ch

	if p.IsAdmin() && d.AssignedTo != nil && *d.AssignedTo != p.UserID {
		r.appendAudit(md.NewAudit(
			p.UserID, md.AuditReturnInitiated, ch.CreatedAt,
			"Initiated return of %s on behalf of its holder", d.SerialNumber,
		))
	}

	res := cloneDevice(stored)
	return &res, nil
}

func (r *Repository) VerifyReturn(_ context.Context, ref, code string, now time.Time) (*md.ReturnResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.findDevice(ref)
	if stored == nil {
		return nil, lifecycle.ErrDeviceNotFound
	}

	d := cloneDevice(stored)
	var ch *md.ReturnChallenge
	if c, ok := r.challenges[d.ID]; ok {
		cp := *c
		ch = &cp
	}

	if err := lifecycle.VerifyReturn(&d, ch, code, now); err != nil {
		return nil, err
	}

	res, err := r.closeReturn(stored, d, now)
	if err != nil {
		return nil, err
	}

	r.challenges[d.ID] = ch
	return res, nil
}
