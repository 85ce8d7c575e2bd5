package cache

import (
	"sync"
	"time"

	"github.com/DataFiling/ScrapeHawk/models"
)

type entry struct {
	payload    models.ScrapeResult
	insertedAt time.Time
}

// Store memoizes scrape results per cache key. Entries expire lazily:
// an expired entry is removed by the lookup that observes it, there is
// no background sweeper. The store grows without bound under sustained
// unique-URL traffic; that is an accepted limitation.
type Store struct {
	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source, used by tests to drive TTL expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored payload if the entry is younger than the TTL.
// An expired entry is deleted and reported as a miss.
func (s *Store) Get(key string) (models.ScrapeResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return models.ScrapeResult{}, false
	}
	if s.now().Sub(e.insertedAt) >= s.ttl {
		delete(s.entries, key)
		return models.ScrapeResult{}, false
	}
	return e.payload, true
}

// Put inserts or overwrites unconditionally and resets the entry age.
func (s *Store) Put(key string, payload models.ScrapeResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		payload:    payload,
		insertedAt: s.now(),
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
