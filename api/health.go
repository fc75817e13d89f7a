package api

import (
	"context"
	"net/http"
	"time"

	"github.com/nudgyt/scaiguide/core/response"
)

// probeTimeout bounds each dependency check so a dead dependency cannot
// stall the liveness probe.
const probeTimeout = 2 * time.Second

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	checks := make(map[string]any, len(h.deps.Probes))

	for name, probe := range h.deps.Probes {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		err := probe(ctx)
		cancel()
		if err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = err.Error()
		} else {
			checks[name] = "ok"
		}
	}

	response.JSON(w, status, response.Envelope{
		OK:         status == http.StatusOK,
		StatusCode: status,
		Extra: map[string]any{
			"store":         map[string]any{"enabled": h.deps.StoreEnabled},
			"idleThreshold": h.deps.Sessions.IdleThreshold().String(),
			"checks":        checks,
		},
	})
}
