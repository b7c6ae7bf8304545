// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/asapochi/db"
	"github.com/danielhkuo/asapochi/ids"
	"github.com/danielhkuo/asapochi/models"
)

// SQLStore keeps polls and votes in an SQLite database.
//
// The connection pool must be limited to one connection: transactions then
// serialize, which is what makes RecordVote atomic.
type SQLStore struct {
	conn  *sql.DB
	clock Clock
}

// OpenSQLite opens a private in-memory SQLite database. Its contents live
// only as long as the process.
func OpenSQLite(opts ...Option) (*SQLStore, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// Every new connection to :memory: is a new, empty database
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	st, err := NewSQLStore(conn, opts...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return st, nil
}

// NewSQLStore wraps an open database and creates the schema.
func NewSQLStore(conn *sql.DB, opts ...Option) (*SQLStore, error) {
	if err := db.CreateSchema(conn); err != nil {
		return nil, err
	}
	return &SQLStore{conn: conn, clock: newClock(opts)}, nil
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}

func (s *SQLStore) Clock() Clock {
	return s.clock
}

func (s *SQLStore) CreatePoll(question string, choices []models.Choice, createdBy string) (models.Poll, error) {
	poll := models.Poll{
		PollID:    ids.NewPollID(),
		Question:  question,
		Choices:   numberChoices(choices),
		CreatedBy: createdBy,
		CreatedAt: s.clock.Now(),
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, question, created_by, created_at)
		VALUES (?, ?, ?, ?)
	`, poll.PollID, poll.Question, poll.CreatedBy, poll.CreatedAt.UnixNano())
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, c := range poll.Choices {
		_, err = tx.Exec(`
			INSERT INTO choice (poll_id, id, text, image_url)
			VALUES (?, ?, ?, ?)
		`, poll.PollID, c.ID, c.Text, c.ImageURL)
		if err != nil {
			return models.Poll{}, fmt.Errorf("failed to insert choice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to commit poll: %w", err)
	}

	return poll, nil
}

func (s *SQLStore) GetPoll(pollID string) (models.Poll, error) {
	var poll models.Poll
	var createdAt int64
	err := s.conn.QueryRow(`
		SELECT id, question, created_by, created_at
		FROM poll
		WHERE id = ?
	`, pollID).Scan(&poll.PollID, &poll.Question, &poll.CreatedBy, &createdAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrPollNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}
	poll.CreatedAt = s.fromNanos(createdAt)

	rows, err := s.conn.Query(`
		SELECT id, text, image_url
		FROM choice
		WHERE poll_id = ?
		ORDER BY id
	`, pollID)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	poll.Choices = []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.Text, &c.ImageURL); err != nil {
			return models.Poll{}, fmt.Errorf("failed to scan choice: %w", err)
		}
		poll.Choices = append(poll.Choices, c)
	}
	if err := rows.Err(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to read choices: %w", err)
	}

	return poll, nil
}

func (s *SQLStore) GetAllPolls() ([]models.Poll, error) {
	polls, err := s.queryPolls()
	if err != nil {
		return nil, err
	}

	choices, err := s.queryAllChoices()
	if err != nil {
		return nil, err
	}

	for i := range polls {
		polls[i].Choices = choices[polls[i].PollID]
		if polls[i].Choices == nil {
			polls[i].Choices = []models.Choice{}
		}
	}
	return polls, nil
}

func (s *SQLStore) queryPolls() ([]models.Poll, error) {
	rows, err := s.conn.Query(`
		SELECT id, question, created_by, created_at
		FROM poll
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		var createdAt int64
		if err := rows.Scan(&p.PollID, &p.Question, &p.CreatedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		p.CreatedAt = s.fromNanos(createdAt)
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}
	return polls, nil
}

func (s *SQLStore) queryAllChoices() (map[string][]models.Choice, error) {
	rows, err := s.conn.Query(`
		SELECT poll_id, id, text, image_url
		FROM choice
		ORDER BY poll_id, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := make(map[string][]models.Choice)
	for rows.Next() {
		var pollID string
		var c models.Choice
		if err := rows.Scan(&pollID, &c.ID, &c.Text, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices[pollID] = append(choices[pollID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}
	return choices, nil
}

func (s *SQLStore) AddVote(vote models.Vote) (models.Vote, error) {
	if err := s.insertVote(s.conn, vote); err != nil {
		return models.Vote{}, err
	}
	return vote, nil
}

func (s *SQLStore) RecordVote(vote models.Vote) (models.Vote, error) {
	tx, err := s.conn.Begin()
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pollExists, choiceExists, alreadyVoted bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM poll WHERE id = ?)`, vote.PollID).Scan(&pollExists)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query poll: %w", err)
	}
	if !pollExists {
		return models.Vote{}, ErrPollNotFound
	}

	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM choice WHERE poll_id = ? AND id = ?)
	`, vote.PollID, vote.ChoiceID).Scan(&choiceExists)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query choice: %w", err)
	}
	if !choiceExists {
		return models.Vote{}, ErrInvalidChoice
	}

	now := s.clock.Now()
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE poll_id = ? AND voter_name = ? AND vote_day = ?
		)
	`, vote.PollID, vote.VoterName, s.clock.DayKey(now)).Scan(&alreadyVoted)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to check existing vote: %w", err)
	}
	if alreadyVoted {
		return models.Vote{}, ErrDuplicateVote
	}

	vote.VoteID = ids.NewVoteID()
	vote.VotedAt = now
	if err := s.insertVote(tx, vote); err != nil {
		return models.Vote{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Vote{}, fmt.Errorf("failed to commit vote: %w", err)
	}
	return vote, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *SQLStore) insertVote(e execer, vote models.Vote) error {
	_, err := e.Exec(`
		INSERT INTO vote (id, poll_id, voter_name, choice_id, comment, voted_at, vote_day, ip_hash, user_agent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, vote.VoteID, vote.PollID, vote.VoterName, vote.ChoiceID, vote.Comment,
		vote.VotedAt.UnixNano(), s.clock.DayKey(vote.VotedAt), vote.IPHash, vote.UserAgent)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (s *SQLStore) GetVotes(pollID string) ([]models.Vote, error) {
	return s.queryVotes(`
		SELECT id, poll_id, voter_name, choice_id, comment, voted_at, ip_hash, user_agent
		FROM vote
		WHERE poll_id = ?
		ORDER BY rowid
	`, pollID)
}

func (s *SQLStore) GetVotesForToday(pollID string) ([]models.Vote, error) {
	return s.queryVotes(`
		SELECT id, poll_id, voter_name, choice_id, comment, voted_at, ip_hash, user_agent
		FROM vote
		WHERE poll_id = ? AND vote_day = ?
		ORDER BY rowid
	`, pollID, s.clock.Today())
}

func (s *SQLStore) HasVotedToday(pollID, voterName string) (bool, error) {
	var exists bool
	err := s.conn.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote
			WHERE poll_id = ? AND voter_name = ? AND vote_day = ?
		)
	`, pollID, voterName, s.clock.Today()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return exists, nil
}

func (s *SQLStore) queryVotes(query string, args ...any) ([]models.Vote, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var votedAt int64
		if err := rows.Scan(&v.VoteID, &v.PollID, &v.VoterName, &v.ChoiceID, &v.Comment,
			&votedAt, &v.IPHash, &v.UserAgent); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.VotedAt = s.fromNanos(votedAt)
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}
	return votes, nil
}

func (s *SQLStore) fromNanos(n int64) time.Time {
	return time.Unix(0, n).In(s.clock.Location())
}
