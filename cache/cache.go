// Package cache provides name-keyed caching for NTX entry stores.
//
// Pack entries are immutable once written, so cached bytes never need
// invalidation; eviction is size-driven only. This makes whole-entry
// caching a good fit for chunk lookups, which re-read the same part
// entries as the user pages through a note.
package cache

import (
	"container/list"
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/meigma/ntx/store"
)

// DefaultMaxBytes is the default cache capacity. Part entries are capped
// at 64KB by their u16 size fields, so this holds at least eight of them.
const DefaultMaxBytes = 512 << 10

// Store wraps a store.Store with an in-memory LRU of whole entries.
//
// Concurrent misses for the same entry are deduplicated with
// singleflight, so a cold part entry is fetched once even under a burst
// of lookups. Cached bytes are shared between callers and must be
// treated as immutable.
type Store struct {
	base     store.Store
	maxBytes int64

	group singleflight.Group

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
	size  int64
}

type cacheEntry struct {
	name string
	data []byte
}

// Option configures a Store.
type Option func(*Store)

// WithMaxBytes sets the cache capacity in bytes. Entries larger than the
// capacity are served but never retained.
func WithMaxBytes(n int64) Option {
	return func(s *Store) {
		s.maxBytes = n
	}
}

// New wraps base with caching.
func New(base store.Store, opts ...Option) *Store {
	s := &Store{
		base:     base,
		maxBytes: DefaultMaxBytes,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// ReadEntry implements store.Store.
//
// The returned slice is shared with the cache; callers must not modify it.
func (s *Store) ReadEntry(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.get(name); ok {
		return data, nil
	}

	// The winning caller's ctx governs the fetch; duplicates share its
	// result or error.
	result, err, _ := s.group.Do(name, func() (any, error) {
		if data, ok := s.get(name); ok {
			return data, nil
		}
		data, err := s.base.ReadEntry(ctx, name)
		if err != nil {
			return nil, err
		}
		s.put(name, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil //nolint:errcheck // type assertion always succeeds when err is nil
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Size returns the total bytes currently cached.
func (s *Store) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *Store) get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elem, ok := s.items[name]
	if !ok {
		return nil, false
	}
	s.ll.MoveToFront(elem)
	return elem.Value.(*cacheEntry).data, true //nolint:errcheck // list only holds *cacheEntry
}

func (s *Store) put(name string, data []byte) {
	if int64(len(data)) > s.maxBytes {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[name]; ok {
		s.ll.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry) //nolint:errcheck // list only holds *cacheEntry
		s.size += int64(len(data)) - int64(len(entry.data))
		entry.data = data
	} else {
		s.items[name] = s.ll.PushFront(&cacheEntry{name: name, data: data})
		s.size += int64(len(data))
	}

	for s.size > s.maxBytes {
		oldest := s.ll.Back()
		if oldest == nil {
			break
		}
		entry := oldest.Value.(*cacheEntry) //nolint:errcheck // list only holds *cacheEntry
		s.ll.Remove(oldest)
		delete(s.items, entry.name)
		s.size -= int64(len(entry.data))
	}
}
