package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/nudgyt/scaiguide/core/feedback"
	"github.com/nudgyt/scaiguide/core/response"
)

// maxPhotoSize caps the multipart memory buffer for feedback photos.
const maxPhotoSize = 10 << 20

type feedbackRequest struct {
	Session string `json:"session"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	var (
		req   feedbackRequest
		photo *feedback.Photo
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
			response.Fail(w, http.StatusBadRequest, "Invalid multipart body")
			return
		}
		req.Session = r.FormValue("session")
		req.Rating, _ = strconv.Atoi(r.FormValue("rating"))
		req.Comment = r.FormValue("comment")

		if file, header, err := r.FormFile("photo"); err == nil {
			defer file.Close()
			photo = &feedback.Photo{
				ContentType: header.Header.Get("Content-Type"),
				Reader:      file,
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Fail(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	}

	fb, err := h.deps.Feedback.Create(r.Context(), req.Session, req.Rating, req.Comment, photo)
	switch {
	case err == nil:
		response.OK(w, http.StatusCreated, map[string]any{"feedback": fb})
	case errors.Is(err, feedback.ErrMissingSessionID), errors.Is(err, feedback.ErrInvalidRating):
		response.Fail(w, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, r, err)
	}
}

func (h *handler) listFeedback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	items, err := h.deps.Feedback.List(r.Context(), q.Get("session"), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	response.OK(w, http.StatusOK, map[string]any{
		"count":    len(items),
		"feedback": items,
	})
}
