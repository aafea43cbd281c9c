package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
	epoch     uint64
}

// Store is an in-process TTL cache. Loads for the same key are deduplicated.
// Every Delete, DeletePrefix or Flush advances the store generation, and a
// load that started before the generation moved is returned to its callers
// but never stored. In-flight loads under an invalidated key are forgotten,
// so callers arriving after the invalidation start a fresh load.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	inflight   map[string]int
	generation uint64
	ttl        time.Duration
	epoch      atomic.Uint64
	flight     singleflight.Group
	now        func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries:  make(map[string]entry),
		inflight: make(map[string]int),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.epoch != s.epoch.Load() || (s.ttl > 0 && !e.expiresAt.After(s.now())) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = s.newEntry(value)
	s.mu.Unlock()
}

// storeLoaded keeps value only when no invalidation ran since generation.
// The check and the write share the lock with the invalidations.
func (s *Store) storeLoaded(key string, value any, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return false
	}
	s.entries[key] = s.newEntry(value)
	return true
}

func (s *Store) newEntry(value any) entry {
	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}
	return entry{value: value, expiresAt: expiresAt, epoch: s.epoch.Load()}
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.generation++
	delete(s.entries, key)
	s.flight.Forget(key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	s.generation++
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	for key := range s.inflight {
		if strings.HasPrefix(key, prefix) {
			s.flight.Forget(key)
		}
	}
	s.mu.Unlock()
}

// Flush drops every entry and discards loads that are still in flight.
func (s *Store) Flush(_ context.Context) {
	s.epoch.Add(1)
	s.mu.Lock()
	s.generation++
	for key := range s.inflight {
		s.flight.Forget(key)
	}
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		generation := s.beginLoad(key)
		defer s.endLoad(key)

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.storeLoaded(key, loaded, generation)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) beginLoad(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight[key]++
	return s.generation
}

func (s *Store) endLoad(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[key] <= 1 {
		delete(s.inflight, key)
		return
	}
	s.inflight[key]--
}
