// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// serve routes req through a chi router so URL params resolve
func serve(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func validChoices() []map[string]string {
	return []map[string]string{
		{"text": "Ramen"},
		{"text": "Sushi", "imageUrl": "https://img.example/sushi.png"},
		{"text": "Curry"},
		{"text": "Soba"},
	}
}
