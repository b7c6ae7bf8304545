// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/asapochi/cliparse"
	"github.com/danielhkuo/asapochi/middleware"
	"github.com/danielhkuo/asapochi/models"
	"github.com/danielhkuo/asapochi/store"
)

type ResultsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(st store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: st, cfg: cfg}
}

// GetTodayVotes handles GET /api/polls/{pollID}/votes
// Unknown polls yield an empty list, not a 404.
func (h *ResultsHandler) GetTodayVotes(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "pollID")

	votes, err := h.store.GetVotesForToday(pollID)
	if err != nil {
		slog.Error("failed to get votes", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get votes")
		return
	}
	if votes == nil {
		votes = []models.Vote{}
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// GetResults handles GET /api/polls/{pollID}/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "pollID")

	poll, err := h.store.GetPoll(pollID)
	if err != nil {
		writeStoreError(w, err, "failed to get poll")
		return
	}

	votes, err := h.store.GetVotesForToday(pollID)
	if err != nil {
		slog.Error("failed to get votes", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	history, err := h.store.GetVotes(pollID)
	if err != nil {
		slog.Error("failed to get vote history", "poll_id", pollID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get results")
		return
	}

	clock := h.store.Clock()
	middleware.JSONResponse(w, http.StatusOK, models.PollResults{
		Poll:                   poll,
		Date:                   clock.Today(),
		TotalVotes:             len(votes),
		AllTimeVotes:           len(history),
		Tallies:                TallyVotes(poll, votes),
		Voters:                 VoterBubbles(poll, votes, clock.Now()),
		RefreshIntervalSeconds: int(h.cfg.RefreshInterval.Seconds()),
	})
}
