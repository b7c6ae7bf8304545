// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// ChoiceCount is the fixed number of choices on every poll
const ChoiceCount = 4

// DefaultCreator is recorded when a poll is created without a creator name
const DefaultCreator = "anonymous"

// Display colors for choices 1-4, in ordinal order
var ChoiceColors = [ChoiceCount]string{
	"#F04600",
	"#03BF92",
	"#0080EF",
	"#FEAA02",
}

// Request types

type ChoiceRequest struct {
	Text     string `json:"text" validate:"max=200"`
	ImageURL string `json:"imageUrl,omitempty" validate:"max=2048"`
}

type CreatePollRequest struct {
	Question  string          `json:"question" validate:"required,max=500"`
	Choices   []ChoiceRequest `json:"choices" validate:"len=4,dive"`
	CreatedBy string          `json:"createdBy" validate:"max=50"`
}

type CastVoteRequest struct {
	VoterName string `json:"voterName" validate:"required,max=50"`
	ChoiceID  int    `json:"choiceId" validate:"required"`
	Comment   string `json:"comment" validate:"max=500"`
}

// Response types

type VoteCheckResponse struct {
	HasVotedToday    bool   `json:"hasVotedToday"`
	MarkedVotedToday bool   `json:"markedVotedToday"`
	VoterName        string `json:"voterName,omitempty"`
}

type ChoiceTally struct {
	Choice     Choice `json:"choice"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

type VoterBubble struct {
	VoteID     string    `json:"voteId"`
	VoterName  string    `json:"voterName"`
	Comment    string    `json:"comment,omitempty"`
	ChoiceID   int       `json:"choiceId"`
	ChoiceText string    `json:"choiceText"`
	Color      string    `json:"color"`
	VotedAt    time.Time `json:"votedAt"`
	VotedAgo   string    `json:"votedAgo"`
}

type PollResults struct {
	Poll                   Poll          `json:"poll"`
	Date                   string        `json:"date"`
	TotalVotes             int           `json:"totalVotes"`
	AllTimeVotes           int           `json:"allTimeVotes"`
	Tallies                []ChoiceTally `json:"tallies"`
	Voters                 []VoterBubble `json:"voters"`
	RefreshIntervalSeconds int           `json:"refreshIntervalSeconds"`
}

// Domain types

type Choice struct {
	ID       int    `json:"id"` // 1-indexed ordinal
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Poll struct {
	PollID    string    `json:"pollId"`
	Question  string    `json:"question"`
	Choices   []Choice  `json:"choices"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasChoice reports whether id is one of the poll's choice ordinals
func (p Poll) HasChoice(id int) bool {
	for _, c := range p.Choices {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ChoiceText returns the display text for a choice, or "" if unknown
func (p Poll) ChoiceText(id int) string {
	for _, c := range p.Choices {
		if c.ID == id {
			return c.Text
		}
	}
	return ""
}

type Vote struct {
	VoteID    string    `json:"voteId"`
	PollID    string    `json:"pollId"`
	VoterName string    `json:"voterName"`
	ChoiceID  int       `json:"choiceId"`
	Comment   string    `json:"comment"`
	VotedAt   time.Time `json:"votedAt"`
	IPHash    *string   `json:"-"` // Never expose in JSON
	UserAgent *string   `json:"-"` // Never expose in JSON
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
