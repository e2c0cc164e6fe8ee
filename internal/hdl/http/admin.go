package http

import (
	"net/http"
	"time"

	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	ot "github.com/opentracing/opentracing-go"
)

// upsertTabType godoc
//
//	@Summary		Add or update a tab type
//	@Description	Creates the type by name or changes its daily limit and low stock threshold
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.AddTabRequest	true	"Tab type"
//	@Success		200				{object}	dto.AddTabResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/add-tab/ [post]
func (h *Handler) upsertTabType(w http.ResponseWriter, r *http.Request) {
	const op = "admin.upsertTabType.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.AddTabRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.UpsertTabType(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// provisionDevice godoc
//
//	@Summary		Register a physical device
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Bearer access token"
//	@Param			body			body		dto.ProvisionRequest	true	"Serial and tab type"
//	@Success		201				{object}	dto.ProvisionResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		404				{object}	utils.ErrorResponse	"tab not found"
//	@Failure		409				{object}	utils.ErrorResponse	"serial number already registered"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/devices/ [post]
func (h *Handler) provisionDevice(w http.ResponseWriter, r *http.Request) {
	const op = "admin.provisionDevice.hdl"
	s, c := time.Now(), http.StatusCreated
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.ProvisionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.ProvisionDevice(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// setRepair godoc
//
//	@Summary		Toggle the repair flag of a device
//	@Description	Sending a held device to repair closes its assignment
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.RepairRequest	true	"Device and flag"
//	@Success		200				{object}	dto.DeviceResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/devices/repair/ [post]
func (h *Handler) setRepair(w http.ResponseWriter, r *http.Request) {
	const op = "admin.setRepair.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.RepairRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.SetRepair(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// cancelPendingReturn godoc
//
//	@Summary		Cancel a pending return
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.DeviceRequest	true	"Device reference"
//	@Success		200				{object}	dto.MessageResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/return/cancel/ [post]
func (h *Handler) cancelPendingReturn(w http.ResponseWriter, r *http.Request) {
	const op = "admin.cancelPendingReturn.hdl"
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

	res, err := h.ctrl.CancelPendingReturn(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// forceReturn godoc
//
//	@Summary		Return a device without a code
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string				true	"Bearer access token"
//	@Param			body			body		dto.DeviceRequest	true	"Device reference"
//	@Success		200				{object}	dto.ForceReturnResponse
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/return/force/ [post]
func (h *Handler) forceReturn(w http.ResponseWriter, r *http.Request) {
	const op = "admin.forceReturn.hdl"
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

	res, err := h.ctrl.ForceReturn(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// registerUser godoc
//
//	@Summary		Register a user
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string					true	"Bearer access token"
//	@Param			body			body		dto.RegisterUserRequest	true	"User"
//	@Success		201				{object}	dto.UserInfo
//	@Failure		400				{object}	utils.ErrorResponse
//	@Failure		403				{object}	utils.ErrorResponse	"admin privileges required"
//	@Failure		409				{object}	utils.ErrorResponse	"already exists"
//	@Failure		500				{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/users/ [post]
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	const op = "admin.registerUser.hdl"
	s, c := time.Now(), http.StatusCreated
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.RegisterUserRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.RegisterUser(ctx, utils.Principal(ctx), req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}
