package http

import (
	"net/http"
	"time"

	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	ot "github.com/opentracing/opentracing-go"
)

// assign godoc
//
//	@Summary		Check out a device
//	@Description	Assign a device, addressed by id or serial number, to the caller
//	@Tags			Engine
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.DeviceRequest	true	"Device reference"
//	@Success		200				{object}	dto.AssignResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		404				{object}	utils.ErrorResponse	"device not found"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/assign/ [post]
func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	const op = "engine.assign.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.DeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.Assign(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// listTabTypes godoc
//
//	@Summary		List tab types
//	@Tags			Engine
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200				{array}	dto.TabTypeResponse
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/check-in/ [get]
func (h *Handler) listTabTypes(w http.ResponseWriter, r *http.Request) {
	const op = "engine.listTabTypes.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	res, err := h.ctrl.ListTabTypes(ctx)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// checkIn godoc
//
//	@Summary		Log usage or return a tab
//	@Description	action "log" checks out the lowest available serial of the type; "return" is admin only
//	@Tags			Engine
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.CheckInRequest	true	"Check-in payload"
//	@Success		200				{object}	dto.CheckInResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		404				{object}	utils.ErrorResponse	"tab or user not found"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/check-in/ [post]
func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request) {
	const op = "engine.checkIn.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.CheckInRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.CheckIn(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// listPossessions godoc
//
//	@Summary		Devices held by the caller
//	@Tags			Engine
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200				{array}	models.Possession
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/possession/ [get]
func (h *Handler) listPossessions(w http.ResponseWriter, r *http.Request) {
	const op = "engine.listPossessions.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	res, err := h.ctrl.ListPossessions(ctx, utils.Principal(ctx))
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// userHistory godoc
//
//	@Summary		Recent activity of the caller
//	@Tags			Engine
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200				{array}	report.HistoryRow
//	@Failure		401				{object}	utils.ErrorResponse
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/user/history/ [get]
func (h *Handler) userHistory(w http.ResponseWriter, r *http.Request) {
	const op = "engine.userHistory.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	res, err := h.ctrl.UserHistory(ctx, utils.Principal(ctx))
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// initiateReturn godoc
//
//	@Summary		Start a verified return
//	@Description	Issues a one-time code that an admin reads from the dashboard
//	@Tags			Engine
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.DeviceRequest	true	"Device reference"
//	@Success		200				{object}	dto.MessageResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		404				{object}	utils.ErrorResponse	"device not found"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/return/initiate/ [post]
func (h *Handler) initiateReturn(w http.ResponseWriter, r *http.Request) {
	const op = "engine.initiateReturn.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.DeviceRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.InitiateReturn(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// verifyReturn godoc
//
//	@Summary		Complete a verified return
//	@Tags			Engine
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Bearer access token"
//	@Param			body			body		dto.VerifyReturnRequest	true	"Device reference and code"
//	@Success		200				{object}	dto.VerifyReturnResponse
//	@Failure		400				{object}	utils.ErrorResponse	"invalid or expired OTP"
//	@Failure		429				{object}	utils.ErrorResponse	"too many failed attempts"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/return/verify/ [post]
func (h *Handler) verifyReturn(w http.ResponseWriter, r *http.Request) {
	const op = "engine.verifyReturn.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.VerifyReturnRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.VerifyReturn(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}
