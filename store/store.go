// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"time"

	"github.com/danielhkuo/asapochi/models"
)

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrDuplicateVote  = errors.New("already voted today")
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrUnknownBackend = errors.New("unknown store type")
)

// Store types accepted by New
const (
	TypeMemory = "memory"
	TypeSQLite = "sqlite"
)

// Store holds all polls and their votes.
type Store interface {
	// CreatePoll assigns an ID, stamps the creation time and numbers the
	// choices 1..n in the order given. Choice count is not checked.
	CreatePoll(question string, choices []models.Choice, createdBy string) (models.Poll, error)
	GetPoll(pollID string) (models.Poll, error)
	// GetAllPolls returns polls in insertion order.
	GetAllPolls() ([]models.Poll, error)

	// AddVote appends vote as-is. It does not check the one-vote-per-day
	// rule or the choice; use RecordVote for that.
	AddVote(vote models.Vote) (models.Vote, error)
	// RecordVote checks that the poll and choice exist and that the voter has
	// not voted today, then assigns an ID and timestamp and appends the vote.
	// The checks and the append are atomic.
	RecordVote(vote models.Vote) (models.Vote, error)
	// GetVotes returns every vote of a poll across all days, in append order.
	GetVotes(pollID string) ([]models.Vote, error)
	GetVotesForToday(pollID string) ([]models.Vote, error)
	HasVotedToday(pollID, voterName string) (bool, error)

	Clock() Clock
}

// New builds a store of the given type ("memory" or "sqlite").
func New(storeType string, opts ...Option) (Store, error) {
	switch storeType {
	case TypeMemory, "":
		return NewMemoryStore(opts...), nil
	case TypeSQLite:
		return OpenSQLite(opts...)
	default:
		return nil, ErrUnknownBackend
	}
}

type Option func(*Clock)

// WithClock replaces time.Now as the store's time source
func WithClock(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// WithLocation sets the location calendar days are evaluated in
func WithLocation(loc *time.Location) Option {
	return func(c *Clock) {
		c.loc = loc
	}
}

func newClock(opts []Option) Clock {
	c := Clock{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Clock is a store's notion of "now" and of calendar days.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// dayLayout is the format of day keys
const dayLayout = "2006-01-02"

func (c Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c Clock) Location() *time.Location {
	return c.loc
}

// DayKey returns the calendar date of t in the clock's location
func (c Clock) DayKey(t time.Time) string {
	return t.In(c.loc).Format(dayLayout)
}

// Today returns the current calendar date
func (c Clock) Today() string {
	return c.DayKey(c.now())
}

func numberChoices(choices []models.Choice) []models.Choice {
	numbered := make([]models.Choice, len(choices))
	for i, c := range choices {
		numbered[i] = models.Choice{
			ID:       i + 1,
			Text:     c.Text,
			ImageURL: c.ImageURL,
		}
	}
	return numbered
}
