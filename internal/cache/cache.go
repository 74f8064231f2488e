package cache

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"time"
)

// Category names one result family with its own TTL, mirroring how the
// upstream data goes stale at different rates.
type Category string

const (
	CategoryHoldings    Category = "holdings"
	CategoryPerformance Category = "performance"
	CategoryCorrelation Category = "correlation"
	CategoryExchange    Category = "exchange"
	CategoryBenchmark   Category = "benchmark"
)

// Clock lets tests drive expiry deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

func DefaultTTLs() map[Category]time.Duration {
	return map[Category]time.Duration{
		CategoryHoldings:    5 * time.Minute,
		CategoryPerformance: time.Hour,
		CategoryCorrelation: time.Hour,
		CategoryExchange:    24 * time.Hour,
		CategoryBenchmark:   24 * time.Hour,
	}
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a time-bounded key/value store, one namespace per category. It is
// an explicit dependency - constructed once at startup and passed in - rather
// than package-level state, so tests can substitute a deterministic clock or
// a zero-TTL store.
type Store struct {
	mu      sync.Mutex
	clock   Clock
	ttls    map[Category]time.Duration
	entries map[Category]map[string]entry
}

func New(clock Clock) *Store {
	return &Store{
		clock:   clock,
		ttls:    DefaultTTLs(),
		entries: map[Category]map[string]entry{},
	}
}

func (s *Store) SetTTL(category Category, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ttls[category] = ttl
}

// Get returns the cached value unless it has outlived its category TTL.
func (s *Store) Get(category Category, key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[category][key]
	if !ok {
		return nil, false
	}
	if s.clock.Now().After(e.expiresAt) {
		delete(s.entries[category], key)
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(category Category, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[category]; !ok {
		s.entries[category] = map[string]entry{}
	}
	s.entries[category][key] = entry{
		value:     value,
		expiresAt: s.clock.Now().Add(s.ttls[category]),
	}
}

// Clear drops the given categories, or everything when none are named.
func (s *Store) Clear(categories ...Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(categories) == 0 {
		s.entries = map[Category]map[string]entry{}
		return
	}
	for _, c := range categories {
		delete(s.entries, c)
	}
}

// Key builds a stable cache key from the call's arguments.
func Key(parts ...any) string {
	h := fnv.New64a()
	for _, p := range parts {
		fmt.Fprintf(h, "%v:", p)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// GetOrCompute returns the cached value when fresh, otherwise runs compute
// exactly once and stores the result. Concurrent identical calls may race to
// compute redundantly; last write wins. Errors are never cached.
func GetOrCompute[T any](s *Store, category Category, key string, compute func() (T, error)) (T, error) {
	if v, ok := s.Get(category, key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	s.Set(category, key, value)
	return value, nil
}
