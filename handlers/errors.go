// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/asapochi/middleware"
	"github.com/danielhkuo/asapochi/store"
)

// writeStoreError maps store errors to HTTP responses. Anything unexpected
// is logged with msg and returned as a 500.
func writeStoreError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, store.ErrPollNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, store.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted today")
	case errors.Is(err, store.ErrInvalidChoice):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid choice")
	default:
		slog.Error(msg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
