package leave

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/leavedesk/leavedesk/internal/platform/httpx"
)

// Handler exposes the leave endpoints over JSON.
type Handler struct {
	logger        *slog.Logger
	service       *Service
	lookupLimiter func(http.Handler) http.Handler
}

// NewHandler constructs a Handler. lookupLimiter may be nil.
func NewHandler(logger *slog.Logger, service *Service, lookupLimiter func(http.Handler) http.Handler) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, lookupLimiter: lookupLimiter}
}

type lookupResponse struct {
	Success bool         `json:"success"`
	Record  PublicRecord `json:"record"`
}

type listResponse struct {
	Success bool           `json:"success"`
	Leaves  []PublicRecord `json:"leaves"`
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}
	req.RemoteIP = clientIP(r)

	record, err := h.service.Lookup(r.Context(), req)
	if err != nil {
		if !errors.Is(err, httpx.ErrValidation) && !errors.Is(err, httpx.ErrForbidden) && !errors.Is(err, httpx.ErrNotFound) {
			h.logger.Error("leave lookup", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, lookupResponse{Success: true, Record: record})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list leaves", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Success: true, Leaves: leaves})
}

// clientIP trims the port chi's RealIP leaves on direct connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
