package db

import (
	"context"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) GetUserByEmployeeID(ctx context.Context, employeeID string) (*md.User, error) {
	const op = "users.GetUserByEmployeeID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	if err := r.conn.GetContext(ctx, res, userGetByEmployeeIDQ, employeeID); err != nil {
		return nil, notFound(err)
	}
	return res, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	if err := r.conn.GetContext(ctx, res, userGetByIDQ, id); err != nil {
		return nil, notFound(err)
	}
	return res, nil
}

func (r *Repository) GetDevice(ctx context.Context, ref string) (*md.Device, error) {
	const op = "devices.GetDevice.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	d, err := findDevice(ctx, r.conn, ref, getDeviceByIDQ, getDeviceBySerialQ)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return d, nil
}

func (r *Repository) ListTabTypes(ctx context.Context) ([]md.TabType, error) {
	const op = "reports.ListTabTypes.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.TabType, 0)
	if err := r.conn.SelectContext(ctx, &res, listTabTypesQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListPossessions(ctx context.Context, userID uuid.UUID) ([]md.Possession, error) {
	const op = "reports.ListPossessions.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.Possession, 0)
	if err := r.conn.SelectContext(ctx, &res, listPossessionsQ, userID); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListActiveLoans(ctx context.Context) ([]md.ActiveLoan, error) {
	const op = "reports.ListActiveLoans.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.ActiveLoan, 0)
	if err := r.conn.SelectContext(ctx, &res, listActiveLoansQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListPendingReturns(ctx context.Context) ([]md.PendingReturn, error) {
	const op = "reports.ListPendingReturns.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.PendingReturn, 0)
	if err := r.conn.SelectContext(ctx, &res, listPendingReturnsQ); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListActivity(ctx context.Context, f md.ActivityFilter) ([]md.ActivityRecord, error) {
	const op = "reports.ListActivity.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildActivityQuery(ctx, f)
	if err != nil {
		return nil, err
	}

	res := make([]md.ActivityRecord, 0)
	if err = r.conn.SelectContext(ctx, &res, q, args...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListAuditTrails(ctx context.Context, limit int) ([]md.AuditRecord, error) {
	const op = "reports.ListAuditTrails.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := make([]md.AuditRecord, 0)
	if err := r.conn.SelectContext(ctx, &res, listAuditTrailsQ, limit); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) ListAssignmentRecords(ctx context.Context, f md.LogFilter) ([]md.AssignmentRecord, error) {
	const op = "reports.ListAssignmentRecords.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, args, err := buildAssignmentRecordsQuery(ctx, f)
	if err != nil {
		return nil, err
	}

	res := make([]md.AssignmentRecord, 0)
	if err = r.conn.SelectContext(ctx, &res, q, args...); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}

func (r *Repository) UsageStats(ctx context.Context, dayStart, monthStart time.Time) (*md.UsageStats, error) {
	const op = "reports.UsageStats.repo"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.UsageStats{}
	if err := r.conn.GetContext(ctx, res, usageStatsQ, dayStart, monthStart); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	return res, nil
}
