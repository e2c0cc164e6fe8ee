package http

import (
	mid "github.com/JMURv/tab-audit/internal/hdl/http/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the API. Paths are declared without a trailing slash;
// StripSlashes makes "/api/assign/" and "/api/assign" equivalent.
func (h *Handler) RegisterRoutes() {
	h.router.Post("/api/token", h.login)
	h.router.Post("/api/token/refresh", h.refresh)

	h.router.Group(func(r chi.Router) {
		r.Use(mid.Auth(h.au))

		r.Post("/api/assign", h.assign)
		r.Get("/api/check-in", h.listTabTypes)
		r.Post("/api/check-in", h.checkIn)
		r.Get("/api/possession", h.listPossessions)
		r.Get("/api/user/history", h.userHistory)
		r.Post("/api/return/initiate", h.initiateReturn)
		r.Post("/api/return/verify", h.verifyReturn)
		r.Get("/api/logs", h.logs)

		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/dashboard", h.dashboard)
			r.Get("/export-csv", h.exportCSV)
			r.Post("/export-csv/archive", h.archiveCSV)
			r.Post("/add-tab", h.upsertTabType)
			r.Post("/devices", h.provisionDevice)
			r.Post("/devices/repair", h.setRepair)
			r.Post("/return/cancel", h.cancelPendingReturn)
			r.Post("/return/force", h.forceReturn)
			r.Post("/users", h.registerUser)
		})
	})
}
