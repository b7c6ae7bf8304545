// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/asapochi/cliparse"
	"github.com/danielhkuo/asapochi/models"
	"github.com/danielhkuo/asapochi/store"
)

// FakeClock is a settable time source for stores under test
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// TestNoon is a mid-day UTC instant used as the default test "now"
var TestNoon = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// NewTestStore returns a fresh in-memory store evaluating days in UTC,
// together with the clock that drives it
func NewTestStore(t *testing.T) (*store.MemoryStore, *FakeClock) {
	t.Helper()

	clock := NewFakeClock(TestNoon)
	st := store.NewMemoryStore(store.WithClock(clock.Now), store.WithLocation(time.UTC))
	return st, clock
}

// NewTestSQLStore returns a fresh SQLite-backed store evaluating days in UTC
func NewTestSQLStore(t *testing.T) (*store.SQLStore, *FakeClock) {
	t.Helper()

	clock := NewFakeClock(TestNoon)
	st, err := store.OpenSQLite(store.WithClock(clock.Now), store.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, clock
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		StoreType:       store.TypeMemory,
		IPHashSalt:      "test-ip-salt",
		AllowedOrigins:  []string{"*"},
		RefreshInterval: 5 * time.Second,
		LogLevel:        "info",
	}
}

// TestChoices returns four choices with distinct texts
func TestChoices() []models.Choice {
	choices := make([]models.Choice, models.ChoiceCount)
	for i := range choices {
		choices[i] = models.Choice{Text: fmt.Sprintf("Choice %d", i+1)}
	}
	return choices
}

// CreateTestPoll creates a four-choice poll directly in the store
func CreateTestPoll(t *testing.T, st store.Store, question string) models.Poll {
	t.Helper()

	poll, err := st.CreatePoll(question, TestChoices(), "TestUser")
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// CastTestVote records a vote directly in the store
func CastTestVote(t *testing.T, st store.Store, pollID, voterName string, choiceID int) models.Vote {
	t.Helper()

	vote, err := st.RecordVote(models.Vote{
		PollID:    pollID,
		VoterName: voterName,
		ChoiceID:  choiceID,
	})
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	return vote
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
