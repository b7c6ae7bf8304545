// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/asapochi/models"
)

// TallyVotes counts votes per choice, in choice order. Percentages are of
// all votes given, rounded to whole numbers, and are all 0 when there are no
// votes. Votes for choices the poll does not have count toward the total
// only.
func TallyVotes(poll models.Poll, votes []models.Vote) []models.ChoiceTally {
	counts := make(map[int]int, len(poll.Choices))
	for _, v := range votes {
		counts[v.ChoiceID]++
	}
	total := len(votes)

	tallies := make([]models.ChoiceTally, len(poll.Choices))
	for i, c := range poll.Choices {
		tallies[i] = models.ChoiceTally{
			Choice:     c,
			Count:      counts[c.ID],
			Percentage: percentage(counts[c.ID], total),
			Color:      ChoiceColor(c.ID),
		}
	}
	return tallies
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// ChoiceColor returns the display color for a 1-indexed choice ID
func ChoiceColor(choiceID int) string {
	if choiceID < 1 || choiceID > len(models.ChoiceColors) {
		return ""
	}
	return models.ChoiceColors[choiceID-1]
}

// VoterBubbles describes each vote for display, newest first. VotedAgo is
// relative to now.
func VoterBubbles(poll models.Poll, votes []models.Vote, now time.Time) []models.VoterBubble {
	bubbles := make([]models.VoterBubble, 0, len(votes))
	for _, v := range votes {
		bubbles = append(bubbles, models.VoterBubble{
			VoteID:     v.VoteID,
			VoterName:  v.VoterName,
			Comment:    v.Comment,
			ChoiceID:   v.ChoiceID,
			ChoiceText: poll.ChoiceText(v.ChoiceID),
			Color:      ChoiceColor(v.ChoiceID),
			VotedAt:    v.VotedAt,
			VotedAgo:   humanize.RelTime(v.VotedAt, now, "ago", "from now"),
		})
	}

	sort.SliceStable(bubbles, func(i, j int) bool {
		return bubbles[i].VotedAt.After(bubbles[j].VotedAt)
	})
	return bubbles
}
