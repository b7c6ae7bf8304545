// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids generates identifiers and privacy-preserving hashes.

# Identifiers

Poll and vote IDs are random UUIDs (version 4):

	pollID := ids.NewPollID()
	voteID := ids.NewVoteID()

# IP Hashing

Votes record a salted hash of the client IP, never the IP itself:

	hash := ids.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package ids
