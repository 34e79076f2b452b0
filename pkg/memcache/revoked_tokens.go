// pkg/mem/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore is consulted by the auth middleware for existence
// checks only; it is never authoritative for identity.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type revokedEntry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]revokedEntry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]revokedEntry),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = revokedEntry{
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}
