// store.go — In-memory challenge store: id → expected answer with expiry.
package server

import (
	"sync"
	"time"
)

type challenge struct {
	answer    string
	expiresAt time.Time
}

// challengeStore holds outstanding captchas. Entries are single-use and
// expire after the configured TTL; expired entries are swept on every put.
type challengeStore struct {
	mu      sync.Mutex
	entries map[string]challenge
	ttl     time.Duration
	now     func() time.Time
}

func newChallengeStore(ttl time.Duration) *challengeStore {
	return &challengeStore{
		entries: make(map[string]challenge),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *challengeStore) put(id, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, v := range s.entries {
		if now.After(v.expiresAt) {
			delete(s.entries, k)
		}
	}
	s.entries[id] = challenge{answer: answer, expiresAt: now.Add(s.ttl)}
}

// take removes and returns the answer for id. A missing or expired entry
// returns false; either way the id cannot be tried twice.
func (s *challengeStore) take(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.entries[id]
	if !ok {
		return "", false
	}
	delete(s.entries, id)
	if s.now().After(c.expiresAt) {
		return "", false
	}
	return c.answer, true
}
