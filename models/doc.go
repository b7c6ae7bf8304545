// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are camelCase to match the web client.

# Request Types

Types for parsing incoming JSON (validated with struct tags, see package
validation):

  - CreatePollRequest: question, choices (exactly 4), createdBy
  - ChoiceRequest: text, imageUrl
  - CastVoteRequest: voterName, choiceId, comment

# Response Types

  - VoteCheckResponse: server and cookie view of "voted today"
  - PollResults: tallies and voter bubbles for the results view
  - ErrorResponse: error, message

# Domain Types

  - Poll: question with four choices, immutable after creation
  - Choice: ordinal 1-4, text, optional image
  - Vote: one voter's choice on a given day, append-only

# Constants

	ChoiceCount    = 4
	DefaultCreator = "anonymous"

ChoiceColors holds the display color of each choice ordinal.
*/
package models
