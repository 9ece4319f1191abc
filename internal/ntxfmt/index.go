package ntxfmt

import (
	"encoding/binary"
	"fmt"
)

// DecodeIndex parses the index entry and returns its notes in on-disk
// order.
//
// A note count of zero yields an empty, non-nil slice: a valid state,
// distinct from any decode failure. On failure no notes are returned.
// The returned notes do not alias data.
func DecodeIndex(data []byte) ([]Note, error) {
	if len(data) < IndexHeaderSize {
		return nil, fmt.Errorf("index: %d bytes: %w", len(data), ErrTooSmall)
	}
	if string(data[:4]) != indexMagic {
		return nil, fmt.Errorf("index: %w", ErrBadMagic)
	}

	version := binary.LittleEndian.Uint16(data[4:6])
	headerSize := binary.LittleEndian.Uint16(data[6:8])
	noteCount := binary.LittleEndian.Uint16(data[8:10])

	if version != Version || headerSize != IndexHeaderSize {
		return nil, fmt.Errorf("index: version %d header %d: %w", version, headerSize, ErrVersionMismatch)
	}

	notes := make([]Note, 0, noteCount)
	pos := int(headerSize)
	for i := 0; i < int(noteCount); i++ {
		if pos+indexRecordFixedSize > len(data) {
			return nil, fmt.Errorf("index: record %d: %w", i, ErrTruncated)
		}
		rec := data[pos : pos+indexRecordFixedSize]
		titleLen := int(rec[12])
		pos += indexRecordFixedSize

		if pos+titleLen > len(data) {
			return nil, fmt.Errorf("index: record %d title: %w", i, ErrTruncated)
		}
		notes = append(notes, Note{
			ID:             binary.LittleEndian.Uint16(rec[0:2]),
			FirstPartID:    binary.LittleEndian.Uint16(rec[2:4]),
			PartCount:      binary.LittleEndian.Uint16(rec[4:6]),
			TotalChunks:    binary.LittleEndian.Uint16(rec[6:8]),
			TotalTextBytes: binary.LittleEndian.Uint32(rec[8:12]),
			Title:          string(data[pos : pos+titleLen]),
		})
		pos += titleLen
	}
	return notes, nil
}
