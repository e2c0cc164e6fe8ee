package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) CancelPendingReturn(
	ctx context.Context,
	ref string,
	adminID uuid.UUID,
	now time.Time,
) (*md.Device, error) {
	const op = "admin.CancelPendingReturn.repo"
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

	if err = lifecycle.CancelPendingReturn(d); err != nil {
		return nil, err
	}

	if err = saveDevice(ctx, tx, d); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, deleteChallengeQ, d.ID); err != nil {
		return nil, err
	}

	audit := md.NewAudit(adminID, md.AuditReturnCancelled, now, "Cancelled pending return of %s", d.SerialNumber)
	if err = writeAudit(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit return cancel", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return d, nil
}

func (r *Repository) ForceReturn(
	ctx context.Context,
	ref string,
	adminID uuid.UUID,
	now time.Time,
) (*md.ReturnResult, error) {
	const op = "admin.ForceReturn.repo"
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

	audit := md.NewAudit(adminID, md.AuditForceReturn, now, "Force returned %s", d.SerialNumber)
	if err = writeAudit(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit force return", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// SetRepair toggles the repair flag. A held device taken to repair is
// returned first, so its unit goes back to stock.
func (r *Repository) SetRepair(
	ctx context.Context,
	ref string,
	repair bool,
	adminID uuid.UUID,
	now time.Time,
) (*md.Device, error) {
	const op = "admin.SetRepair.repo"
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

	wasHeld, err := lifecycle.SetRepair(d, repair)
	if err != nil {
		return nil, err
	}

	if wasHeld {
		if _, err = tx.ExecContext(ctx, deleteChallengeQ, d.ID); err != nil {
			return nil, err
		}

		if _, err = closeReturn(ctx, tx, d, now); err != nil {
			return nil, err
		}
	} else if err = saveDevice(ctx, tx, d); err != nil {
		return nil, err
	}

	state := "cleared repair on"
	if repair {
		state = "sent to repair"
	}
	audit := md.NewAudit(adminID, md.AuditRepairStatus, now, "Device %s %s", d.SerialNumber, state)
	if err = writeAudit(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit repair status", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return d, nil
}

func (r *Repository) ProvisionDevice(
	ctx context.Context,
	serial string,
	tabID, adminID uuid.UUID,
	now time.Time,
) (*md.ProvisionResult, error) {
	const op = "admin.ProvisionDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	defer rollback(tx, op)

	var stock struct {
		Name           string `db:"name"`
		StockRemaining int    `db:"stock_remaining"`
	}
	if err = tx.GetContext(ctx, &stock, provisionStockQ, tabID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lifecycle.ErrTabTypeNotFound
		}
		return nil, err
	}

	d := md.Device{SerialNumber: serial, TabTypeID: tabID, Status: md.StatusAvailable}
	if err = tx.GetContext(ctx, &d.ID, createDeviceQ, serial, tabID); err != nil {
		if isUniqueViolation(err) {
			return nil, repo.ErrAlreadyExists
		}
		return nil, err
	}

	audit := md.NewAudit(
		adminID, md.AuditInventoryUpdate, now,
		"Provisioned %s as %s, stock now %d", serial, stock.Name, stock.StockRemaining,
	)
	if err = writeAudit(ctx, tx, audit); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit provision", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return &md.ProvisionResult{Device: d, TabName: stock.Name, NewStock: stock.StockRemaining}, nil
}

// UpsertTabType creates a type by name or updates its limits. The flag
// reports whether a row was created.
func (r *Repository) UpsertTabType(
	ctx context.Context,
	in md.TabTypeInput,
	adminID uuid.UUID,
	now time.Time,
) (*md.TabType, bool, error) {
	const op = "admin.UpsertTabType.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, false, err
	}
	defer rollback(tx, op)

	t := &md.TabType{}
	created := false
	var audit *md.AuditTrail

	err = tx.GetContext(ctx, t, lockTabTypeByNameQ, in.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		t = &md.TabType{
			Name:              in.Name,
			DailyLimitPerUser: in.DailyLimitPerUser,
			LowStockThreshold: md.DefaultLowStockThreshold,
			CreatedAt:         now,
		}
		if in.LowStockThreshold != nil {
			t.LowStockThreshold = *in.LowStockThreshold
		}

		if err = tx.GetContext(
			ctx, &t.ID, createTabTypeQ, t.Name, t.DailyLimitPerUser, t.LowStockThreshold, t.CreatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return nil, false, repo.ErrAlreadyExists
			}
			return nil, false, err
		}

		audit = md.NewAudit(
			adminID, md.AuditInventoryUpdate, now,
			"Added tab type %s with daily limit %d", t.Name, t.DailyLimitPerUser,
		)
	case err != nil:
		return nil, false, err
	default:
		prev := t.DailyLimitPerUser
		t.DailyLimitPerUser = in.DailyLimitPerUser
		if in.LowStockThreshold != nil {
			t.LowStockThreshold = *in.LowStockThreshold
		}

		if _, err = tx.ExecContext(ctx, updateTabTypeQ, t.DailyLimitPerUser, t.LowStockThreshold, t.ID); err != nil {
			return nil, false, err
		}

		audit = md.NewAudit(
			adminID, md.AuditLimitChange, now,
			"Daily limit of %s changed from %d to %d", t.Name, prev, t.DailyLimitPerUser,
		)
	}

	if err = writeAudit(ctx, tx, audit); err != nil {
		return nil, false, err
	}

	if err = tx.Commit(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to commit tab type", zap.String("op", op), zap.Error(err))
		return nil, false, err
	}

	return t, created, nil
}

func (r *Repository) CreateAuditTrail(ctx context.Context, a *md.AuditTrail) error {
	const op = "admin.CreateAuditTrail.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := writeAudit(ctx, r.conn, a); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to create audit trail", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}
