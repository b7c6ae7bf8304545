// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/asapochi/clientstate"
	"github.com/danielhkuo/asapochi/cliparse"
	"github.com/danielhkuo/asapochi/ids"
	"github.com/danielhkuo/asapochi/middleware"
	"github.com/danielhkuo/asapochi/models"
	"github.com/danielhkuo/asapochi/store"
	"github.com/danielhkuo/asapochi/validation"
)

type VotingHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(st store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg}
}

// CastVote handles POST /api/polls/{pollID}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "pollID")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.VoterName = strings.TrimSpace(req.VoterName)
	req.Comment = strings.TrimSpace(req.Comment)

	if err := validation.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	vote := models.Vote{
		PollID:    pollID,
		VoterName: req.VoterName,
		ChoiceID:  req.ChoiceID,
		Comment:   req.Comment,
	}

	// Hash IP for abuse review (optional)
	if h.cfg.IPHashSalt != "" {
		ipHash := ids.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
		vote.IPHash = &ipHash
	}
	if ua := r.UserAgent(); ua != "" {
		vote.UserAgent = &ua
	}

	vote, err := h.store.RecordVote(vote)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateVote) || errors.Is(err, store.ErrInvalidChoice) {
			slog.Warn("vote rejected", "poll_id", pollID, "voter", req.VoterName, "reason", err)
		}
		writeStoreError(w, err, "failed to record vote")
		return
	}

	clientstate.SaveName(w, vote.VoterName)
	clientstate.MarkAsVoted(w, vote.PollID, h.store.Clock().DayKey(vote.VotedAt))

	slog.Info("vote recorded", "poll_id", vote.PollID, "vote_id", vote.VoteID, "choice_id", vote.ChoiceID)

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// CheckVoted handles GET /api/polls/{pollID}/votes/check
// The voterName query parameter falls back to the remembered name cookie.
func (h *VotingHandler) CheckVoted(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "pollID")

	if _, err := h.store.GetPoll(pollID); err != nil {
		writeStoreError(w, err, "failed to get poll")
		return
	}

	voterName := strings.TrimSpace(r.URL.Query().Get("voterName"))
	if voterName == "" {
		voterName = clientstate.Name(r)
	}

	resp := models.VoteCheckResponse{
		VoterName:        voterName,
		MarkedVotedToday: clientstate.HasVotedToday(r, pollID, h.store.Clock().Today()),
	}

	if voterName != "" {
		voted, err := h.store.HasVotedToday(pollID, voterName)
		if err != nil {
			writeStoreError(w, err, "failed to check vote")
			return
		}
		resp.HasVotedToday = voted
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
