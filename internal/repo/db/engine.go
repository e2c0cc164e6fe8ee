package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) Checkout(
	ctx context.Context,
	ref string,
	userID uuid.UUID,
	dayStart, now time.Time,
) (*md.CheckoutResult, error) {
	const op = "engine.Checkout.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	defer rollback(tx, op)

	d, err := lockDevice(ctx, tx, ref)
	if err != nil {
		return nil, err
	}

	if err = lifecycle.Checkout(d, userID, now); err != nil {
		return nil, err
	}

	if _, err = lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	t, err := getTabType(ctx, tx, d.TabTypeID)
	if err != nil {
		return nil, err
	}

	remaining, err := reserve(ctx, tx, t, userID, dayStart)
	if err != nil {
		return nil, err
	}

	assignmentID, err := assign(ctx, tx, d, userID, md.ActionCheckout, now)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit checkout", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return &md.CheckoutResult{
		AssignmentID:   assignmentID,
		Device:         *d,
		TabName:        t.Name,
		RemainingStock: remaining,
		IssuedAt:       now,
	}, nil
}

// LogUsage checks out the first free device of a type.
func (r *Repository) LogUsage(
	ctx context.Context,
	tabID, userID uuid.UUID,
	dayStart, now time.Time,
) (*md.CheckoutResult, error) {
	const op = "engine.LogUsage.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	defer rollback(tx, op)

	if _, err = lockUser(ctx, tx, userID); err != nil {
		return nil, err
	}

	t, err := getTabType(ctx, tx, tabID)
	if err != nil {
		return nil, err
	}

	remaining, err := reserve(ctx, tx, t, userID, dayStart)
	if err != nil {
		return nil, err
	}

	d := &md.Device{}
	if err = tx.GetContext(ctx, d, lockAvailableDeviceQ, tabID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrDeviceNotAvailable
		}
		return nil, err
	}

	if err = lifecycle.Checkout(d, userID, now); err != nil {
		return nil, err
	}

	assignmentID, err := assign(ctx, tx, d, userID, md.ActionLog, now)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit usage log", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return &md.CheckoutResult{
		AssignmentID:   assignmentID,
		Device:         *d,
		TabName:        t.Name,
		RemainingStock: remaining,
		IssuedAt:       now,
	}, nil
}

// ReturnDirect closes the user's oldest holding of a type without a challenge.
func (r *Repository) ReturnDirect(
	ctx context.Context,
	tabID, userID, adminID uuid.UUID,
	now time.Time,
) (*md.ReturnResult, error) {
	const op = "engine.ReturnDirect.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	defer rollback(tx, op)

	u, err := lockUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	t, err := getTabType(ctx, tx, tabID)
	if err != nil {
		return nil, err
	}

	d := &md.Device{}
	if err = tx.GetContext(ctx, d, lockOldestHeldDeviceQ, userID, tabID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrNothingToReturn
		}
		return nil, err
	}

	if err = lifecycle.ForceReturn(d); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, deleteChallengeQ, d.ID); err != nil {
		return nil, err
	}

	res, err := closeReturn(ctx, tx, d, now)
	if err != nil {
		return nil, err
	}

	audit := md.NewAudit(
		adminID, md.AuditDirectReturn, now,
		"Returned %s (%s) for %s", d.SerialNumber, t.Name, u.EmployeeID,
	)
	if err = writeAudit(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit direct return", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// InitiateReturn moves the device to pending return and stores ch as its
// only live challenge.
func (r *Repository) InitiateReturn(
	ctx context.Context,
	ref string,
	p md.Principal,
	ch md.ReturnChallenge,
) (*md.Device, error) {
	const op = "engine.InitiateReturn.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	defer rollback(tx, op)

	d, err := lockDevice(ctx, tx, ref)
	if err != nil {
		return nil, err
	}

	if err = lifecycle.InitiateReturn(d, p); err != nil {
		return nil, err
	}

	if err = saveDevice(ctx, tx, d); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, upsertChallengeQ, d.ID, ch.Code, ch.CreatedAt, ch.ExpiresAt); err != nil {
		return nil, err
	}

	if p.IsAdmin() && d.AssignedTo != nil && *d.AssignedTo != p.UserID {
		audit := md.NewAudit(
			p.UserID, md.AuditReturnInitiated, ch.CreatedAt,
			"Initiated return of %s on behalf of its holder", d.SerialNumber,
		)
		if err = writeAudit(ctx, tx, audit); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit return initiation", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return d, nil
}

func (r *Repository) VerifyReturn(ctx context.Context, ref, code string, now time.Time) (*md.ReturnResult, error) {
	const op = "engine.VerifyReturn.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	defer rollback(tx, op)

	d, err := lockDevice(ctx, tx, ref)
	if err != nil {
		return nil, err
	}

	var ch *md.ReturnChallenge
	row := &md.ReturnChallenge{}
	if err = tx.GetContext(ctx, row, lockChallengeQ, d.ID); err == nil {
		ch = row
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err = lifecycle.VerifyReturn(d, ch, code, now); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, consumeChallengeQ, d.ID); err != nil {
		return nil, err
	}

	res, err := closeReturn(ctx, tx, d, now)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit return verification", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}
