package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	"github.com/JMURv/tab-audit/internal/report"
	ot "github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// dashboard godoc
//
//	@Summary		Admin dashboard
//	@Description	Stock, loans, pending returns with their codes, recent activity and audit trail
//	@Tags			Admin
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{object}	dto.DashboardResponse
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/dashboard/ [get]
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	const op = "reports.dashboard.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	res, err := h.ctrl.Dashboard(ctx, utils.Principal(ctx))
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// logs godoc
//
//	@Summary		Assignment logs
//	@Description	Staff see their own assignments, admins see everyone's
//	@Tags			Reports
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Param			view			query	string	false	"classic or detailed"	default(classic)
//	@Param			search			query	string	false	"Employee id, name, serial, model or status"
//	@Success		200				{array}	report.ClassicRow
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/logs/ [get]
func (h *Handler) logs(w http.ResponseWriter, r *http.Request) {
	const op = "reports.logs.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	q := r.URL.Query()
	p, search := utils.Principal(ctx), q.Get("search")

	var (
		res any
		err error
	)
	if report.ParseView(q.Get("view")) == report.ViewDetailed {
		res, err = h.ctrl.DetailedLogs(ctx, p, search)
	} else {
		res, err = h.ctrl.ClassicLogs(ctx, p, search)
	}
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// exportCSV godoc
//
//	@Summary		Export logs as CSV
//	@Tags			Admin
//	@Produce		text/csv
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Param			view			query	string	false	"classic or detailed"	default(classic)
//	@Success		200				{file}	file
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/export-csv/ [get]
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	const op = "reports.exportCSV.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	view := report.ParseView(r.URL.Query().Get("view"))
	buf := &bytes.Buffer{}
	if err := h.ctrl.ExportCSV(ctx, utils.Principal(ctx), view, buf); err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="tab_logs_%s.csv"`, view))
	w.WriteHeader(c)
	if _, err := buf.WriteTo(w); err != nil {
		zap.L().Debug("failed to write csv", zap.String("op", op), zap.Error(err))
	}
}

// archiveCSV godoc
//
//	@Summary		Archive a CSV export to object storage
//	@Tags			Admin
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Param			view			query		string	false	"classic or detailed"	default(classic)
//	@Success		200				{object}	dto.ArchiveResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		503				{object}	utils.ErrorResponse	"archive disabled"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/export-csv/archive/ [post]
func (h *Handler) archiveCSV(w http.ResponseWriter, r *http.Request) {
	const op = "reports.archiveCSV.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	res, err := h.ctrl.ArchiveCSV(ctx, utils.Principal(ctx), report.ParseView(r.URL.Query().Get("view")))
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}
