package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nudgyt/scaiguide/core/response"
	"github.com/nudgyt/scaiguide/core/route"
)

type visitRequest struct {
	Session string `json:"session"`
	Exhibit string `json:"exhibit"`
}

func (h *handler) recordVisit(w http.ResponseWriter, r *http.Request) {
	var req visitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	v, err := h.deps.Routes.Record(r.Context(), req.Session, req.Exhibit)
	switch {
	case err == nil:
		response.OK(w, http.StatusCreated, map[string]any{"visit": v})
	case errors.Is(err, route.ErrMissingSessionID), errors.Is(err, route.ErrMissingExhibit):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, r, err)
	}
}

func (h *handler) listVisits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessionID := q.Get("session")
	limit, _ := strconv.Atoi(q.Get("limit"))

	visits, err := h.deps.Routes.List(r.Context(), sessionID, limit)
	switch {
	case err == nil:
		extra := map[string]any{
			"count":  len(visits),
			"visits": visits,
		}
		if len(visits) > 0 {
			first := visits[0].VisitedAt
			last := visits[len(visits)-1].VisitedAt
			extra["window"] = route.FormatWindow(first, last)
		}
		response.OK(w, http.StatusOK, extra)
	case errors.Is(err, route.ErrMissingSessionID):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, r, err)
	}
}
