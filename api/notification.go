package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nudgyt/scaiguide/core/notification"
	"github.com/nudgyt/scaiguide/core/response"
)

type notificationRequest struct {
	Session string `json:"session"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

func (h *handler) createNotification(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	n, err := h.deps.Notifications.Create(r.Context(), req.Session, req.Title, req.Body)
	switch {
	case err == nil:
		response.OK(w, http.StatusCreated, map[string]any{"notification": n})
	case errors.Is(err, notification.ErrMissingTitle):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, r, err)
	}
}

func (h *handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	items, err := h.deps.Notifications.List(r.Context(), q.Get("session"), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	response.OK(w, http.StatusOK, map[string]any{
		"count":         len(items),
		"notifications": items,
	})
}

func (h *handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.deps.Notifications.MarkRead(r.Context(), id)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.Envelope{
			OK:         true,
			StatusCode: http.StatusOK,
			Message:    "Notification marked as read.",
		})
	case errors.Is(err, notification.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Notification does not exist")
	default:
		h.internalError(w, r, err)
	}
}
