// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the asapochi API server.

asapochi is a daily team poll: a poll has exactly four choices, and each
voter (by display name) gets one vote per poll per calendar day. Results
show today's votes only.

# Starting the Server

Everything has a default, so the server starts with no configuration:

	go run .

Or with flags:

	go run . -p 3318 -s sqlite

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-s): memory or sqlite, both in-process (default: memory)
  - IP_HASH_SALT (--ip-salt): Secret for hashing voter IPs (optional)
  - ALLOWED_ORIGINS: Comma-separated CORS origins (default: *)
  - REFRESH_INTERVAL: Results refresh hint for clients (default: 5s)
  - LOG_LEVEL: debug, info, warn or error (default: info)

A .env file in the working directory is loaded if present (-env to pick
another). All data lives in process memory and is gone on restart.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using chi
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - store: Poll and vote storage (map-backed or in-memory SQLite)
  - db: SQLite schema
  - validation: Request validation
  - clientstate: Voter name and "voted today" cookies
  - ids: Identifier generation and IP hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
