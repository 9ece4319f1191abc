package ntx

import "github.com/meigma/ntx/internal/ntxfmt"

// Errors re-exported from internal/ntxfmt. Storage-side errors
// (not found, empty, short read) live in the store package.
var (
	// ErrBadMagic is returned when an entry's magic literal does not match.
	ErrBadMagic = ntxfmt.ErrBadMagic

	// ErrVersionMismatch is returned when an entry's version or declared
	// header size differs from format version 1.
	ErrVersionMismatch = ntxfmt.ErrVersionMismatch

	// ErrTooSmall is returned when an entry is shorter than its fixed header.
	ErrTooSmall = ntxfmt.ErrTooSmall

	// ErrTruncated is returned when an index record or title extends past
	// the end of the index entry.
	ErrTruncated = ntxfmt.ErrTruncated

	// ErrChunkOutOfRange is returned when the requested chunk index is not
	// below the note's declared total.
	ErrChunkOutOfRange = ntxfmt.ErrChunkOutOfRange

	// ErrChunkNotFound is returned when none of a note's parts index the
	// requested chunk.
	ErrChunkNotFound = ntxfmt.ErrChunkNotFound

	// ErrPayloadOutOfBounds is returned when a declared payload or chunk
	// range would read past an entry's end.
	ErrPayloadOutOfBounds = ntxfmt.ErrPayloadOutOfBounds

	// ErrChunkTableOutOfBounds is returned when a declared chunk table
	// would read past an entry's end.
	ErrChunkTableOutOfBounds = ntxfmt.ErrChunkTableOutOfBounds
)
