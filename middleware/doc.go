// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/api/polls", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, bytes, duration_ms). The request ID comes from chi's RequestID
middleware when it is installed.

# CORS Middleware

Enable cross-origin requests for the web client:

	r.Use(middleware.CORS(cfg.AllowedOrigins))

Allows GET, POST and OPTIONS with credentials, so the voter cookies set by
package clientstate travel with cross-origin requests. A "*" entry allows
any origin; the request's own origin is echoed back in its place.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at 64 KiB):

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for IP hashing on recorded votes.
*/
package middleware
