// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/asapochi/cliparse"
	"github.com/danielhkuo/asapochi/middleware"
	"github.com/danielhkuo/asapochi/models"
	"github.com/danielhkuo/asapochi/store"
	"github.com/danielhkuo/asapochi/validation"
)

type PollHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewPollHandler(st store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: st, cfg: cfg}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	req.CreatedBy = strings.TrimSpace(req.CreatedBy)
	for i := range req.Choices {
		req.Choices[i].Text = strings.TrimSpace(req.Choices[i].Text)
		req.Choices[i].ImageURL = strings.TrimSpace(req.Choices[i].ImageURL)
	}

	if err := validation.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = models.DefaultCreator
	}

	choices := make([]models.Choice, len(req.Choices))
	for i, c := range req.Choices {
		choices[i] = models.Choice{Text: c.Text, ImageURL: c.ImageURL}
	}

	poll, err := h.store.CreatePoll(req.Question, choices, createdBy)
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.PollID, "created_by", poll.CreatedBy)

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListPolls handles GET /api/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.GetAllPolls()
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /api/polls/{pollID}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "pollID")

	poll, err := h.store.GetPoll(pollID)
	if err != nil {
		writeStoreError(w, err, "failed to get poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
