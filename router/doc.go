// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the asapochi API.

# Route Registration

NewRouter creates a chi router with all endpoints:

	handler := router.NewRouter(st, cfg)

Every request passes through chi's RequestID and Recoverer middleware and
the CORS policy from cfg.AllowedOrigins. API routes are wrapped in
middleware.WithLogging.

# Endpoints

Health:

	GET /health

Polls:

	POST /api/polls          - Create poll (exactly four choices)
	GET  /api/polls          - List polls
	GET  /api/polls/{pollID} - Get poll

Votes:

	POST /api/polls/{pollID}/votes       - Cast today's vote
	GET  /api/polls/{pollID}/votes       - Today's votes
	GET  /api/polls/{pollID}/votes/check - Has this voter voted today?

Results:

	GET /api/polls/{pollID}/results - Today's tallies and voter bubbles

# Handler Initialization

	pollHandler := handlers.NewPollHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)

All handlers share the one store passed to NewRouter.
*/
package router
