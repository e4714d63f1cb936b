package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/leavedesk/leavedesk/internal/leave"
	"github.com/leavedesk/leavedesk/internal/observability"
	"github.com/leavedesk/leavedesk/internal/platform/httpx"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger       *slog.Logger
	Config       *Config
	LeaveHandler *leave.Handler
	Metrics      *observability.Metrics
	// Assets holds the front-end build; nil disables static serving.
	Assets fs.FS
}

type healthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// NewRouter constructs the chi.Router with the service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, healthResponse{Success: true, Status: "ok"})
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			httpx.Fail(w, http.StatusNotFound, "endpoint not found")
		})
		r.MethodNotAllowed(methodNotAllowed)
		if params.LeaveHandler != nil {
			params.LeaveHandler.MountRoutes(r)
		}
	})

	r.NotFound(spaHandler(params.Assets))

	return r
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpx.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
}
