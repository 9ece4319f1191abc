package ntxfmt

import "errors"

// Sentinel errors for structural validation failures.
//
// Every failure aborts the enclosing decode or lookup entirely; no
// partially decoded index or chunk is ever returned alongside one of
// these. Match with errors.Is; the wrapped message carries the entry
// name and position.
var (
	// ErrBadMagic is returned when an entry's magic literal does not match.
	ErrBadMagic = errors.New("ntx: bad magic")

	// ErrVersionMismatch is returned when an entry's version or declared
	// header size differs from format version 1.
	ErrVersionMismatch = errors.New("ntx: version mismatch")

	// ErrTooSmall is returned when an entry is shorter than its fixed header.
	ErrTooSmall = errors.New("ntx: entry too small")

	// ErrTruncated is returned when a record or title extends past the
	// end of the index entry.
	ErrTruncated = errors.New("ntx: truncated entry")

	// ErrChunkOutOfRange is returned when the requested global chunk index
	// is not below the note's declared total.
	ErrChunkOutOfRange = errors.New("ntx: chunk index out of range")

	// ErrChunkNotFound is returned when all of a note's parts were read and
	// validated but none indexed the requested chunk. This is a format
	// consistency violation: the index promised more chunks than the parts
	// deliver.
	ErrChunkNotFound = errors.New("ntx: chunk not found")

	// ErrPayloadOutOfBounds is returned when a declared payload range, or a
	// chunk's range within the payload, would read past the entry's end.
	ErrPayloadOutOfBounds = errors.New("ntx: payload out of bounds")

	// ErrChunkTableOutOfBounds is returned when the declared chunk table
	// would read past the entry's end.
	ErrChunkTableOutOfBounds = errors.New("ntx: chunk table out of bounds")
)
