package store

import (
	"context"
	"fmt"
)

// Mem is an in-memory store keyed by entry name. Reads return copies, so
// callers may mutate the result freely.
//
// Mem is safe for concurrent reads. Put must not race with ReadEntry;
// populate the store before handing it to readers.
type Mem struct {
	entries map[string][]byte
}

// NewMem returns a Mem holding copies of the given entries.
func NewMem(entries map[string][]byte) *Mem {
	m := &Mem{entries: make(map[string][]byte, len(entries))}
	for name, data := range entries {
		m.Put(name, data)
	}
	return m
}

// Put stores a copy of data under name, replacing any previous entry.
func (m *Mem) Put(name string, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.entries[name] = buf
}

// Delete removes the named entry.
func (m *Mem) Delete(name string) {
	delete(m.entries, name)
}

// ReadEntry implements Store.
func (m *Mem) ReadEntry(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := m.entries[name]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", name, ErrNotFound)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("entry %q: %w", name, ErrEmpty)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}
