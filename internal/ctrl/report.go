package ctrl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/JMURv/tab-audit/internal/cache"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/lifecycle"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/JMURv/tab-audit/internal/repo/s3"
	"github.com/JMURv/tab-audit/internal/report"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (c *Controller) ListTabTypes(ctx context.Context) ([]dto.TabTypeResponse, error) {
	const op = "reports.ListTabTypes.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := make([]dto.TabTypeResponse, 0)
	if err := c.cache.GetToStruct(ctx, tabTypesKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrNotFoundInCache) {
		zap.L().Debug("tab types cache unavailable", zap.String("op", op), zap.Error(err))
	}

	tabs, err := c.repo.ListTabTypes(ctx)
	if err != nil {
		return nil, fail(span, op, err)
	}

	res := make([]dto.TabTypeResponse, 0, len(tabs))
	for i := range tabs {
		res = append(res, dto.TabTypeResponse{
			ID:                tabs[i].ID,
			Name:              tabs[i].Name,
			DailyLimitPerUser: tabs[i].DailyLimitPerUser,
			StockRemaining:    tabs[i].StockRemaining,
		})
	}

	c.cache.Set(ctx, config.TabTypesCacheTime, tabTypesKey, res)
	return res, nil
}

// ListPossessions returns the devices currently held by the caller with the
// number of units they hold per type.
func (c *Controller) ListPossessions(ctx context.Context, p md.Principal) ([]md.Possession, error) {
	const op = "reports.ListPossessions.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	res, err := c.repo.ListPossessions(ctx, p.UserID)
	if err != nil {
		return nil, fail(span, op, err)
	}

	balance := make(map[uuid.UUID]int, len(res))
	for i := range res {
		balance[res[i].TabTypeID]++
	}
	for i := range res {
		res[i].TabTypeName = res[i].TabName
		res[i].Balance = balance[res[i].TabTypeID]
	}
	return res, nil
}

func (c *Controller) UserHistory(ctx context.Context, p md.Principal) ([]report.HistoryRow, error) {
	const op = "reports.UserHistory.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	events, err := c.repo.ListActivity(ctx, md.ActivityFilter{UserID: &p.UserID, Limit: config.UserHistoryLimit})
	if err != nil {
		return nil, fail(span, op, err)
	}
	return report.History(events), nil
}

func (c *Controller) Dashboard(ctx context.Context, p md.Principal) (*dto.DashboardResponse, error) {
	const op = "reports.Dashboard.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	cached := &dto.DashboardResponse{}
	if err := c.cache.GetToStruct(ctx, dashboardKey, cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrNotFoundInCache) {
		zap.L().Debug("dashboard cache unavailable", zap.String("op", op), zap.Error(err))
	}

	now := c.now()
	var (
		tabs     []md.TabType
		loans    []md.ActiveLoan
		pending  []md.PendingReturn
		activity []md.ActivityRecord
		audits   []md.AuditRecord
		usage    *md.UsageStats
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tabs, err = c.repo.ListTabTypes(gCtx)
		return err
	})
	g.Go(func() (err error) {
		loans, err = c.repo.ListActiveLoans(gCtx)
		return err
	})
	g.Go(func() (err error) {
		pending, err = c.repo.ListPendingReturns(gCtx)
		return err
	})
	g.Go(func() (err error) {
		activity, err = c.repo.ListActivity(gCtx, md.ActivityFilter{Limit: config.RecentActivityLimit})
		return err
	})
	g.Go(func() (err error) {
		audits, err = c.repo.ListAuditTrails(gCtx, config.AuditTrailLimit)
		return err
	})
	g.Go(func() (err error) {
		usage, err = c.repo.UsageStats(gCtx, c.dayStart(now), lifecycle.MonthStart(now, c.loc))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fail(span, op, err)
	}

	type loanKey struct{ employee, tab string }
	balance := make(map[loanKey]int, len(loans))
	for i := range loans {
		balance[loanKey{loans[i].EmployeeID, loans[i].TabName}]++
	}
	for i := range loans {
		loans[i].Balance = balance[loanKey{loans[i].EmployeeID, loans[i].TabName}]
	}

	for i := range pending {
		pending[i].Expired = !now.Before(pending[i].ExpiresAt)
	}

	stats := dto.DashboardStats{
		UsedToday:          usage.UsedToday,
		UsedThisMonth:      usage.UsedThisMonth,
		ActiveLoans:        len(loans),
		PendingReturns:     len(pending),
		LowStock:           make([]dto.LowStockRow, 0),
		InventoryBreakdown: make([]dto.InventoryRow, 0, len(tabs)),
	}
	for i := range tabs {
		t := &tabs[i]
		stats.TotalStock += t.StockRemaining
		stats.TotalProvisioned += t.TotalProvisioned
		stats.InventoryBreakdown = append(stats.InventoryBreakdown, dto.InventoryRow{
			Name:             t.Name,
			StockRemaining:   t.StockRemaining,
			TotalProvisioned: t.TotalProvisioned,
			InUse:            t.TotalProvisioned - t.StockRemaining,
		})
		if t.StockRemaining < t.LowStockThreshold {
			stats.LowStock = append(stats.LowStock, dto.LowStockRow{
				Name:              t.Name,
				StockRemaining:    t.StockRemaining,
				LowStockThreshold: t.LowStockThreshold,
			})
		}
	}

	res := &dto.DashboardResponse{
		Stats:          stats,
		Stock:          tabs,
		ActiveLoans:    loans,
		PendingReturns: pending,
		RecentActivity: activity,
		AuditTrails:    audits,
	}

	c.cache.Set(ctx, config.DashboardCacheTime, dashboardKey, res)
	return res, nil
}

// logFilter scopes staff to their own assignments.
func logFilter(p md.Principal, search string, limit int) md.LogFilter {
	f := md.LogFilter{Search: search, Limit: limit}
	if !p.IsAdmin() {
		uid := p.UserID
		f.UserID = &uid
	}
	return f
}

func (c *Controller) ClassicLogs(ctx context.Context, p md.Principal, search string) ([]report.ClassicRow, error) {
	const op = "reports.ClassicLogs.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	records, err := c.repo.ListAssignmentRecords(ctx, logFilter(p, search, config.LogsLimit))
	if err != nil {
		return nil, fail(span, op, err)
	}
	return report.Classic(records), nil
}

func (c *Controller) DetailedLogs(ctx context.Context, p md.Principal, search string) ([]report.DetailedRow, error) {
	const op = "reports.DetailedLogs.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireUser(p); err != nil {
		return nil, err
	}

	records, err := c.repo.ListAssignmentRecords(ctx, logFilter(p, search, config.LogsLimit))
	if err != nil {
		return nil, fail(span, op, err)
	}
	return report.Detailed(records), nil
}

func (c *Controller) ExportCSV(ctx context.Context, p md.Principal, view report.View, w io.Writer) error {
	const op = "reports.ExportCSV.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return err
	}

	records, err := c.repo.ListAssignmentRecords(ctx, md.LogFilter{})
	if err != nil {
		return fail(span, op, err)
	}

	if err = report.WriteCSV(w, view, records, c.loc); err != nil {
		return fail(span, op, err)
	}
	return nil
}

// ArchiveCSV uploads a full export to object storage and records it in the
// audit trail.
func (c *Controller) ArchiveCSV(ctx context.Context, p md.Principal, view report.View) (*dto.ArchiveResponse, error) {
	const op = "reports.ArchiveCSV.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	if c.s3 == nil {
		return nil, ErrArchiveDisabled
	}

	buf := &bytes.Buffer{}
	if err := c.ExportCSV(ctx, p, view, buf); err != nil {
		return nil, err
	}

	now := c.now()
	key := fmt.Sprintf("exports/%s-%s.csv", view, now.In(c.loc).Format("20060102-150405"))
	url, err := c.s3.UploadFile(ctx, &s3.UploadFileRequest{
		Key:         key,
		ContentType: "text/csv",
		Body:        buf.Bytes(),
	})
	if err != nil {
		return nil, fail(span, op, err, zap.String("key", key))
	}

	audit := md.NewAudit(p.UserID, md.AuditExportArchived, now, "Archived %s log export to %s", view, key)
	if err = c.repo.CreateAuditTrail(ctx, audit); err != nil {
		return nil, fail(span, op, err, zap.String("key", key))
	}

	c.cache.Delete(ctx, dashboardKey)
	zap.L().Info("export archived", zap.String("op", op), zap.String("key", key), zap.Int("bytes", buf.Len()))
	return &dto.ArchiveResponse{URL: url}, nil
}
