package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	scope     string
	expiresAt time.Time
}

// Store guarda respostas por um curto período. Cada entrada pertence a um
// escopo (o token que a buscou) para que mutações possam invalidar só o que é
// daquela credencial.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get retorna o valor da chave se ainda estiver válido
func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(scope, key string, value any) {
	if s == nil || s.ttl <= 0 {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		scope:     scope,
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
}

// InvalidateScope remove todas as entradas do escopo
func (s *Store) InvalidateScope(scope string) int {
	if s == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.scope == scope {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

// DeleteExpired remove as entradas vencidas e retorna quantas foram removidas
func (s *Store) DeleteExpired() int {
	if s == nil {
		return 0
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Lookup faz o type assertion do valor em cache
func Lookup[T any](s *Store, key string) (T, bool) {
	var zero T

	value, ok := s.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// Fingerprint identifica um token sem guardá-lo em claro
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

func Key(parts ...string) string {
	return strings.Join(parts, "|")
}
