// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package clientstate

import (
	"net/http"
	"net/url"
	"time"
)

const (
	nameCookie        = "asapochi_voter_name"
	votedCookiePrefix = "asapochi_voted_"

	nameMaxAge  = 365 * 24 * time.Hour
	votedMaxAge = 48 * time.Hour
)

// SaveName remembers the voter's display name
func SaveName(w http.ResponseWriter, name string) {
	setCookie(w, nameCookie, name, nameMaxAge)
}

// Name returns the remembered voter name, or "" if none
func Name(r *http.Request) string {
	return cookieValue(r, nameCookie)
}

// MarkAsVoted records that the client voted on pollID on the given day (YYYY-MM-DD)
func MarkAsVoted(w http.ResponseWriter, pollID, day string) {
	setCookie(w, VotedCookieName(pollID), day, votedMaxAge)
}

// HasVotedToday reports whether the client's marker for pollID equals today
func HasVotedToday(r *http.Request, pollID, today string) bool {
	return cookieValue(r, VotedCookieName(pollID)) == today
}

// VotedCookieName is the per-poll marker cookie name
func VotedCookieName(pollID string) string {
	return votedCookiePrefix + pollID
}

// Cookie values are query-escaped so non-ASCII names survive
func setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}
