// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package clientstate keeps two advisory facts in browser cookies.

  - asapochi_voter_name: the voter's display name, so the vote form can be
    pre-filled
  - asapochi_voted_<pollId>: the calendar day (YYYY-MM-DD) the client last
    voted on a poll

Both are set when a vote is accepted:

	clientstate.SaveName(w, vote.VoterName)
	clientstate.MarkAsVoted(w, pollID, clock.DayKey(vote.VotedAt))

and read back on the vote check endpoint:

	marked := clientstate.HasVotedToday(r, pollID, clock.Today())

The markers only let a client skip rendering the vote form. The store's
duplicate-vote check is authoritative; a missing or forged cookie changes
nothing on the server.
*/
package clientstate
