package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")

	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthCheck").Msg("service is unhealthy")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("UNAVAILABLE"))
		return
	}

	w.Write([]byte("OK"))
}
