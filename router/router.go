// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/asapochi/cliparse"
	"github.com/danielhkuo/asapochi/handlers"
	"github.com/danielhkuo/asapochi/middleware"
	"github.com/danielhkuo/asapochi/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	r.Post("/api/polls", middleware.WithLogging(pollHandler.CreatePoll))
	r.Get("/api/polls", middleware.WithLogging(pollHandler.ListPolls))
	r.Get("/api/polls/{pollID}", middleware.WithLogging(pollHandler.GetPoll))

	// Votes
	r.Post("/api/polls/{pollID}/votes", middleware.WithLogging(votingHandler.CastVote))
	r.Get("/api/polls/{pollID}/votes", middleware.WithLogging(resultsHandler.GetTodayVotes))
	r.Get("/api/polls/{pollID}/votes/check", middleware.WithLogging(votingHandler.CheckVoted))

	// Results
	r.Get("/api/polls/{pollID}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("asapochi API v1"))
	})

	return r
}
