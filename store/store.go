// Package store provides archive entry storage backends for NTX packs.
//
// A pack's storage medium is a flat namespace of short-named blobs. Store
// is the one primitive the reader needs from it: read a whole named entry
// into memory. Backends exist for directories of files, in-memory maps,
// HTTP endpoints (httpstore) and S3-compatible object storage (s3).
package store

import (
	"context"
	"errors"
)

// Sentinel errors returned by stores. Match with errors.Is; the wrapped
// message carries the entry name.
var (
	// ErrNotFound is returned when the named entry does not exist.
	ErrNotFound = errors.New("store: entry not found")

	// ErrEmpty is returned when the named entry exists but holds no bytes.
	ErrEmpty = errors.New("store: entry is empty")

	// ErrShortRead is returned when fewer bytes were obtainable than the
	// entry's declared size.
	ErrShortRead = errors.New("store: short read")

	// ErrInvalidName is returned for names outside the archive's short-name
	// namespace.
	ErrInvalidName = errors.New("store: invalid entry name")
)

// MaxNameLen is the short-name limit of the archive namespace, inherited
// from the format's original storage medium.
const MaxNameLen = 8

// FileExt is the filename extension the pack producer uses when entries
// are written out as individual files.
const FileExt = ".bin"

// Store reads whole named entries from an archive medium.
//
// ReadEntry returns the entry's complete bytes, or an error wrapping
// ErrNotFound, ErrEmpty or ErrShortRead. The returned slice is owned by
// the caller unless the implementation documents otherwise.
// Implementations must be safe for concurrent use.
type Store interface {
	ReadEntry(ctx context.Context, name string) ([]byte, error)
}

// ValidName reports whether name fits the archive namespace: non-empty,
// at most MaxNameLen bytes, alphanumeric only. Backends that map names
// onto paths or URLs reject anything else before touching the medium.
func ValidName(name string) bool {
	if name == "" || len(name) > MaxNameLen {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
