package mem

import (
	"sync"
	"time"
)

// ResetTokenStore keeps single-use password reset tokens in process memory.
type ResetTokenStore interface {
	Set(token string, accountEmail string, ttl time.Duration)

	// Consume returns the email the token was issued for and forgets it.
	// Returns "" when the token is unknown or expired.
	Consume(token string) string

	// Purge drops expired tokens and reports how many were removed.
	Purge() int
}

type entry struct {
	email     string
	expiresAt time.Time
}

type ResetTokens struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *ResetTokens) Set(token string, accountEmail string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// one live token per account
	for t, e := range s.data {
		if e.email == accountEmail {
			delete(s.data, t)
		}
	}
	s.data[token] = entry{
		email:     accountEmail,
		expiresAt: s.now().Add(ttl),
	}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if s.now().After(e.expiresAt) {
		return ""
	}
	return e.email
}

func (s *ResetTokens) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for t, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, t)
			removed++
		}
	}
	return removed
}
