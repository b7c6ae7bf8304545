// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"slices"
	"sync"

	"github.com/danielhkuo/asapochi/ids"
	"github.com/danielhkuo/asapochi/models"
)

// MemoryStore keeps polls and votes in maps guarded by a single RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	clock Clock
	polls map[string]models.Poll
	order []string
	votes map[string][]models.Vote
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		clock: newClock(opts),
		polls: make(map[string]models.Poll),
		votes: make(map[string][]models.Vote),
	}
}

func (s *MemoryStore) Clock() Clock {
	return s.clock
}

func (s *MemoryStore) CreatePoll(question string, choices []models.Choice, createdBy string) (models.Poll, error) {
	poll := models.Poll{
		PollID:    ids.NewPollID(),
		Question:  question,
		Choices:   numberChoices(choices),
		CreatedBy: createdBy,
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls[poll.PollID] = poll
	s.order = append(s.order, poll.PollID)
	s.votes[poll.PollID] = []models.Vote{}

	return clonePoll(poll), nil
}

func (s *MemoryStore) GetPoll(pollID string) (models.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poll, ok := s.polls[pollID]
	if !ok {
		return models.Poll{}, ErrPollNotFound
	}
	return clonePoll(poll), nil
}

func (s *MemoryStore) GetAllPolls() ([]models.Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	polls := make([]models.Poll, 0, len(s.order))
	for _, id := range s.order {
		polls = append(polls, clonePoll(s.polls[id]))
	}
	return polls, nil
}

func (s *MemoryStore) AddVote(vote models.Vote) (models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes[vote.PollID] = append(s.votes[vote.PollID], vote)
	return vote, nil
}

func (s *MemoryStore) RecordVote(vote models.Vote) (models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poll, ok := s.polls[vote.PollID]
	if !ok {
		return models.Vote{}, ErrPollNotFound
	}
	if !poll.HasChoice(vote.ChoiceID) {
		return models.Vote{}, ErrInvalidChoice
	}

	now := s.clock.Now()
	today := s.clock.DayKey(now)
	for _, v := range s.votes[vote.PollID] {
		if v.VoterName == vote.VoterName && s.clock.DayKey(v.VotedAt) == today {
			return models.Vote{}, ErrDuplicateVote
		}
	}

	vote.VoteID = ids.NewVoteID()
	vote.VotedAt = now
	s.votes[vote.PollID] = append(s.votes[vote.PollID], vote)
	return vote, nil
}

func (s *MemoryStore) GetVotes(pollID string) ([]models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.votes[pollID]), nil
}

func (s *MemoryStore) GetVotesForToday(pollID string) ([]models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.votesOn(pollID, s.clock.Today()), nil
}

func (s *MemoryStore) HasVotedToday(pollID, voterName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.votesOn(pollID, s.clock.Today()) {
		if v.VoterName == voterName {
			return true, nil
		}
	}
	return false, nil
}

// votesOn filters a poll's votes to one calendar day. Caller holds mu.
func (s *MemoryStore) votesOn(pollID, day string) []models.Vote {
	result := []models.Vote{}
	for _, v := range s.votes[pollID] {
		if s.clock.DayKey(v.VotedAt) == day {
			result = append(result, v)
		}
	}
	return result
}

func clonePoll(p models.Poll) models.Poll {
	p.Choices = slices.Clone(p.Choices)
	return p
}
