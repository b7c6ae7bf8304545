// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the SQL store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as Unix nanoseconds. vote_day is the calendar date
// of voted_at in the store's location.
const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    created_by TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

-- Choices (ordinal 1-4 per poll)
CREATE TABLE IF NOT EXISTS choice (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    id INTEGER NOT NULL,
    text TEXT NOT NULL,
    image_url TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (poll_id, id)
);

-- Votes (append-only)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL,
    voter_name TEXT NOT NULL,
    choice_id INTEGER NOT NULL,
    comment TEXT NOT NULL DEFAULT '',
    voted_at INTEGER NOT NULL,
    vote_day TEXT NOT NULL,
    ip_hash TEXT,
    user_agent TEXT
);

CREATE INDEX IF NOT EXISTS idx_vote_poll_day ON vote(poll_id, vote_day);
CREATE INDEX IF NOT EXISTS idx_vote_poll_voter_day ON vote(poll_id, voter_name, vote_day);
`
