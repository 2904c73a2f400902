package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

func testSrv(t *testing.T) *srv {
	t.Helper()
	gen, err := captcha.New(captcha.DefaultConfig())
	require.NoError(t, err)
	return newSrv(gen, 4)
}

// TestHandleNew verifies that a fresh challenge returns an id and a PNG data
// URL, and that the answer is stored under that id.
func TestHandleNew(t *testing.T) {
	s := testSrv(t)

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/captcha/new", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.ID, 16)
	assert.True(t, strings.HasPrefix(resp.Image, "data:image/png;base64,"))

	answer, ok := s.challenges.take(resp.ID)
	require.True(t, ok)
	assert.Len(t, answer, 4)
}

// TestHandleVerify verifies the full round trip: a correct answer passes
// case-insensitively, and the challenge is consumed by the first attempt.
func TestHandleVerify(t *testing.T) {
	s := testSrv(t)
	mux := s.routes()
	s.challenges.put("abc123", "XY7K")

	verify := func(id, answer string) bool {
		body := strings.NewReader(`{"id":"` + id + `","answer":"` + answer + `"}`)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/captcha/verify", body))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			OK bool `json:"ok"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.OK
	}

	assert.True(t, verify("abc123", "xy7k"), "case-insensitive match")
	assert.False(t, verify("abc123", "xy7k"), "challenge is single-use")
	assert.False(t, verify("unknown", "xy7k"))

	s.challenges.put("abc123", "XY7K")
	assert.False(t, verify("abc123", "WRONG"))
	assert.False(t, verify("abc123", "XY7K"), "failed attempt still consumes the challenge")
}

// TestHandleVerifyBadBody verifies malformed JSON is rejected.
func TestHandleVerifyBadBody(t *testing.T) {
	s := testSrv(t)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/captcha/verify", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestChallengeStoreExpiry verifies TTL handling with a fake clock: expired
// entries fail verification and are swept on the next put.
func TestChallengeStoreExpiry(t *testing.T) {
	store := newChallengeStore(time.Minute)
	now := time.Unix(1700000000, 0)
	store.now = func() time.Time { return now }

	store.put("a", "CODE")
	store.put("b", "CODE")
	now = now.Add(2 * time.Minute)

	_, ok := store.take("a")
	assert.False(t, ok, "expired challenge must not verify")

	store.put("c", "CODE")
	store.mu.Lock()
	_, stale := store.entries["b"]
	store.mu.Unlock()
	assert.False(t, stale, "sweep removes expired entries")

	got, ok := store.take("c")
	assert.True(t, ok)
	assert.Equal(t, "CODE", got)
}
