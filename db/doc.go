// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQLite schema creation for the SQL-backed store.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: question, creator and creation time
  - choice: the four ordinal choices of a poll
  - vote: append-only votes with the calendar day they were cast on

# Relationships

	poll 1──4 choice
	poll 1──* vote

vote.poll_id has no foreign key; raw appends are accepted for any poll ID.

# Indexes

  - vote.(poll_id, vote_day): today's votes for a poll
  - vote.(poll_id, voter_name, vote_day): duplicate-vote check
*/
package db
