// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the asapochi API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - PollHandler: Create, list and fetch polls
  - VotingHandler: Cast a vote, check today's vote
  - ResultsHandler: Today's votes and aggregated results

	pollHandler := handlers.NewPollHandler(st, cfg)

# Daily Voting

A voter (identified by display name, case-sensitive) gets one vote per poll
per calendar day. The day is evaluated in the store's clock location.

	POST /api/polls/{pollID}/votes → CastVote

CastVote goes through store.RecordVote, which checks the poll, the choice
and today's votes and appends in one step. On success the response sets
two cookies through package clientstate: the remembered voter name and a
per-poll "voted on" date.

# Errors

Store errors map to status codes in one place:

	store.ErrPollNotFound  → 404
	store.ErrDuplicateVote → 400
	store.ErrInvalidChoice → 400
	anything else          → 500 (logged)

Malformed JSON and validation failures are 400.

# Results

TallyVotes counts today's votes per choice with rounded percentages and
the choice's display color. VoterBubbles lists each vote newest first with
a humanized age ("3 minutes ago").
*/
package handlers
