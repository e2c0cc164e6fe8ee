package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/JMURv/tab-audit/api/rest/v1"
	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/ctrl"
	mid "github.com/JMURv/tab-audit/internal/hdl/http/middleware"
	"github.com/JMURv/tab-audit/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	au     auth.Core
	srv    *http.Server
	ctrl   ctrl.AppCtrl
}

func New(au auth.Core, ctrl ctrl.AppCtrl) *Handler {
	r := chi.NewRouter()
	h := &Handler{
		router: r,
		au:     au,
		ctrl:   ctrl,
	}

	r.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterRoutes()
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) Start(port int) {
	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
