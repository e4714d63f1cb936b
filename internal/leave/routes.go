package leave

import "github.com/go-chi/chi/v5"

// MountRoutes registers the leave endpoints on an /api router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.lookupLimiter != nil {
			r.Use(h.lookupLimiter)
		}
		r.Post("/leave", h.lookup)
	})
	r.Get("/leaves", h.list)
}
