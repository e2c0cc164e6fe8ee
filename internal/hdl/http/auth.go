package http

import (
	"net/http"
	"time"

	"github.com/JMURv/tab-audit/internal/dto"
	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	ot "github.com/opentracing/opentracing-go"
)

// login godoc
//
//	@Summary		Obtain a token pair
//	@Description	Authenticate with employee id and password
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/token/ [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.Authenticate(ctx, req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}

// refresh godoc
//
//	@Summary		Refresh the access token
//	@Description	Exchange a refresh token for a new access token
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	dto.RefreshResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse	"invalid token"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/token/refresh/ [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	const op = "auth.refresh.hdl"
	s, c := time.Now(), http.StatusOK
	span, ctx := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		c = http.StatusBadRequest
		return
	}

	res, err := h.ctrl.Refresh(ctx, req)
	if err != nil {
		c = utils.HandleErr(w, op, err)
		return
	}

	utils.SuccessResponse(w, c, res)
}
