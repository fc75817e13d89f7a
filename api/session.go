package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/nudgyt/scaiguide/core/response"
	"github.com/nudgyt/scaiguide/core/session"
)

// defaultChatData seeds sessions created without a payload so clients
// always get a non-empty chatData back.
const defaultChatData = "Initial Data"

type sessionRequest struct {
	Session  string `json:"session"`
	ChatData any    `json:"chatData"`
	Reason   string `json:"reason"`
}

// decodeSessionRequest reads the JSON body and falls back to query params
// for legacy clients that still send everything in the URL.
func decodeSessionRequest(r *http.Request) sessionRequest {
	var req sessionRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	q := r.URL.Query()
	if req.Session == "" {
		req.Session = q.Get("session")
	}
	if req.ChatData == nil && q.Has("chatData") {
		req.ChatData = q.Get("chatData")
	}
	return req
}

// sessionBody is the record representation returned to clients,
// mirroring the stored document fields.
func sessionBody(sess session.Session[any]) map[string]any {
	body := map[string]any{
		"chatData":       sess.Data,
		"status":         sess.Status,
		"createdAt":      sess.CreatedAt,
		"updatedAt":      sess.UpdatedAt,
		"lastAccessedAt": sess.LastAccessedAt,
	}
	if sess.EndReason != "" {
		body["endReason"] = sess.EndReason
	}
	return body
}

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.deps.Sessions.List(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	items := make([]map[string]any, 0, len(sessions))
	for _, sess := range sessions {
		body := sessionBody(sess)
		body["id"] = sess.ID
		items = append(items, body)
	}
	response.OK(w, http.StatusOK, map[string]any{
		"count":    len(items),
		"sessions": items,
	})
}

func (h *handler) generateSession(w http.ResponseWriter, r *http.Request) {
	req := decodeSessionRequest(r)

	data := session.NormalizePayload(req.ChatData)
	if data == nil {
		data = defaultChatData
	}

	res, err := h.deps.Sessions.Create(r.Context(), data)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	store := map[string]any{
		"enabled":   h.deps.StoreEnabled,
		"persisted": res.Persisted,
		"error":     nil,
	}
	if res.Err != nil {
		store["error"] = res.Err.Error()
	}

	response.OK(w, http.StatusOK, map[string]any{
		"sessionId": res.ID,
		"chatData":  res.Data,
		"store":     store,
	})
}

func (h *handler) accessSession(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		response.Fail(w, http.StatusBadRequest, "Missing query param ?session=")
		return
	}

	sess, err := h.deps.Sessions.Access(r.Context(), id)
	switch {
	case err == nil:
		response.OK(w, http.StatusOK, map[string]any{
			"id":   sess.ID,
			"data": sessionBody(sess),
		})
	case errors.Is(err, session.ErrExpired):
		msg := fmt.Sprintf("Session expired due to inactivity (idle >= %s).",
			humanDuration(h.deps.Sessions.IdleThreshold()))
		response.FailWith(w, http.StatusNotFound, msg, map[string]any{"expired": true})
	case errors.Is(err, session.ErrNotFound):
		response.FailWith(w, http.StatusNotFound, "Session does not exist", nil)
	default:
		h.internalError(w, r, err)
	}
}

func (h *handler) updateSession(w http.ResponseWriter, r *http.Request) {
	req := decodeSessionRequest(r)
	if req.Session == "" || req.ChatData == nil {
		response.Fail(w, http.StatusBadRequest,
			"Missing required params: { session, chatData } (prefer JSON body).")
		return
	}

	data := session.NormalizePayload(req.ChatData)
	err := h.deps.Sessions.Update(r.Context(), req.Session, data)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.Envelope{
			OK:         true,
			StatusCode: http.StatusOK,
			Message:    "Chat Data updated successfully.",
		})
	case errors.Is(err, session.ErrMissingID), errors.Is(err, session.ErrMissingPayload):
		response.Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Session does not exist")
	default:
		h.internalError(w, r, err)
	}
}

func (h *handler) endSession(w http.ResponseWriter, r *http.Request) {
	req := decodeSessionRequest(r)
	if req.Session == "" {
		response.Fail(w, http.StatusBadRequest, "Missing required param: session")
		return
	}

	sess, err := h.deps.Sessions.End(r.Context(), req.Session, req.Reason)
	switch {
	case err == nil:
		body := sessionBody(sess)
		body["id"] = sess.ID
		response.OK(w, http.StatusOK, map[string]any{"session": body})
	case errors.Is(err, session.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Session does not exist")
	default:
		h.internalError(w, r, err)
	}
}

func (h *handler) handoffSession(w http.ResponseWriter, r *http.Request) {
	req := decodeSessionRequest(r)
	if req.Session == "" {
		response.Fail(w, http.StatusBadRequest, "Missing required param: session")
		return
	}

	err := h.deps.Sessions.Handoff(r.Context(), req.Session)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.Envelope{
			OK:         true,
			StatusCode: http.StatusOK,
			Message:    "Session handed off to guide app.",
		})
	case errors.Is(err, session.ErrNotFound):
		response.Fail(w, http.StatusNotFound, "Session does not exist")
	default:
		h.internalError(w, r, err)
	}
}

// humanDuration renders a duration the way clients display it:
// "2h 5m", "3m 20s" or "45s".
func humanDuration(d time.Duration) string {
	s := int(d.Seconds())
	m := s / 60
	h := m / 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m%60)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s%60)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
