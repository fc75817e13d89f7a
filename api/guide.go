package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/nudgyt/scaiguide/core/exhibit"
	"github.com/nudgyt/scaiguide/core/guide"
	"github.com/nudgyt/scaiguide/core/logger"
	"github.com/nudgyt/scaiguide/core/response"
	"github.com/nudgyt/scaiguide/pkg/chatmodel"
)

type chatRequest struct {
	Messages []chatmodel.Message `json:"messages"`

	// ChatData lets clients resume from a stored session payload instead
	// of an explicit message list. System entries are stripped before use.
	ChatData any `json:"chatData"`
}

// messagesFromPayload converts a stored chat payload into a conversation,
// dropping system entries. Payloads that do not look like message lists
// yield nothing.
func messagesFromPayload(chatData any) []chatmodel.Message {
	stripped := guide.StripSystemPayload(chatData)
	encoded, err := json.Marshal(stripped)
	if err != nil {
		return nil
	}
	var msgs []chatmodel.Message
	if err := json.Unmarshal(encoded, &msgs); err != nil {
		return nil
	}
	return msgs
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	if h.deps.Guide == nil {
		response.Fail(w, http.StatusServiceUnavailable, "Chat model is not configured")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(req.Messages) == 0 && req.ChatData != nil {
		req.Messages = messagesFromPayload(req.ChatData)
	}

	reply, err := h.deps.Guide.Chat(r.Context(), req.Messages)
	switch {
	case err == nil:
		extra := map[string]any{"reply": reply.Reply}
		if reply.Nav != nil {
			extra["nav"] = reply.Nav
		}
		response.OK(w, http.StatusOK, extra)
	case errors.Is(err, guide.ErrEmptyChat):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "chat completion failed", logger.Error(err))
		response.Fail(w, http.StatusBadGateway, "Chat model request failed")
	}
}

func (h *handler) listExhibits(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, http.StatusOK, map[string]any{
		"count":    len(exhibit.Exhibits),
		"exhibits": exhibit.Exhibits,
	})
}

type matchRequest struct {
	Query string `json:"query"`
}

func (h *handler) matchExhibit(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Query == "" {
		req.Query = r.URL.Query().Get("query")
	}
	if strings.TrimSpace(req.Query) == "" {
		response.Fail(w, http.StatusBadRequest, "Missing required param: query")
		return
	}

	// The cached matcher is preferred when chat is configured; the static
	// table alone answers otherwise.
	var (
		ex exhibit.Exhibit
		ok bool
	)
	if h.deps.Guide != nil {
		ex, ok = h.deps.Guide.MatchExhibit(r.Context(), req.Query)
	} else {
		ex, ok = exhibit.Match(req.Query)
	}
	if !ok {
		response.Fail(w, http.StatusNotFound, "No exhibit matches the query")
		return
	}
	response.OK(w, http.StatusOK, map[string]any{"exhibit": ex})
}
