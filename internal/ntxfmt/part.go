package ntxfmt

import (
	"context"
	"encoding/binary"
	"fmt"
)

// EntryReader is the single storage primitive the locator needs: read a
// whole named archive entry into memory.
type EntryReader interface {
	ReadEntry(ctx context.Context, name string) ([]byte, error)
}

// Part is a decoded part entry.
//
// The chunk table and payload alias the entry bytes passed to DecodePart
// and are only valid while that buffer is. Callers that outlive the
// buffer must copy what they need (Chunk text returned by LocateChunk is
// already copied).
type Part struct {
	// Name is the archive entry name the part was read from.
	Name string

	// NoteID, Index and Count identify the part's place within its note:
	// part Index of Count for note NoteID. The locator does not depend on
	// them; they describe the part for inspection tools.
	NoteID uint16
	Index  uint16
	Count  uint16

	table   []byte
	payload []byte
}

// TableEntry is one row of a part's chunk table.
type TableEntry struct {
	// Offset and Length describe the chunk's byte range within the
	// part's payload region.
	Offset uint16
	Length uint16

	// Kind tags how the source text was split at this boundary.
	Kind SplitKind

	// GlobalIndex is the chunk's position in the note's overall chunk
	// sequence. Rows are not required to be sorted or dense; lookups
	// match GlobalIndex by equality.
	GlobalIndex uint16
}

// DecodePart validates a part entry's header and bounds and returns a
// decoded view over data. name is used only for error messages.
func DecodePart(name string, data []byte) (*Part, error) {
	if len(data) < PartHeaderSize {
		return nil, fmt.Errorf("part %s: %d bytes: %w", name, len(data), ErrTooSmall)
	}
	if string(data[:4]) != partMagic {
		return nil, fmt.Errorf("part %s: %w", name, ErrBadMagic)
	}

	version := binary.LittleEndian.Uint16(data[4:6])
	headerSize := binary.LittleEndian.Uint16(data[6:8])
	if version != Version || headerSize != PartHeaderSize {
		return nil, fmt.Errorf("part %s: version %d header %d: %w", name, version, headerSize, ErrVersionMismatch)
	}

	chunkCount := binary.LittleEndian.Uint16(data[14:16])
	tableOff := binary.LittleEndian.Uint16(data[16:18])
	payloadOff := binary.LittleEndian.Uint16(data[18:20])
	payloadSize := binary.LittleEndian.Uint16(data[20:22])

	if int(payloadOff)+int(payloadSize) > len(data) {
		return nil, fmt.Errorf("part %s: payload %d+%d in %d bytes: %w",
			name, payloadOff, payloadSize, len(data), ErrPayloadOutOfBounds)
	}
	tableEnd := int(tableOff) + int(chunkCount)*chunkEntrySize
	if tableEnd > len(data) {
		return nil, fmt.Errorf("part %s: table %d+%d entries in %d bytes: %w",
			name, tableOff, chunkCount, len(data), ErrChunkTableOutOfBounds)
	}

	return &Part{
		Name:    name,
		NoteID:  binary.LittleEndian.Uint16(data[8:10]),
		Index:   binary.LittleEndian.Uint16(data[10:12]),
		Count:   binary.LittleEndian.Uint16(data[12:14]),
		table:   data[tableOff:tableEnd],
		payload: data[payloadOff : int(payloadOff)+int(payloadSize)],
	}, nil
}

// NumChunks returns the number of rows in the part's chunk table.
func (p *Part) NumChunks() int {
	return len(p.table) / chunkEntrySize
}

// TableEntry returns row i of the part's chunk table.
func (p *Part) TableEntry(i int) TableEntry {
	row := p.table[i*chunkEntrySize : (i+1)*chunkEntrySize]
	return TableEntry{
		Offset:      binary.LittleEndian.Uint16(row[0:2]),
		Length:      binary.LittleEndian.Uint16(row[2:4]),
		Kind:        SplitKind(row[4]),
		GlobalIndex: binary.LittleEndian.Uint16(row[6:8]),
	}
}

// Chunk scans the part's table for the row whose global index equals
// global. ok reports whether a row matched; on a match whose declared
// range overruns the payload region the error is non-nil and the chunk
// is empty.
//
// The returned text aliases the part's payload.
func (p *Part) Chunk(global uint16) (chunk Chunk, ok bool, err error) {
	for i := range p.NumChunks() {
		row := p.TableEntry(i)
		if row.GlobalIndex != global {
			continue
		}
		if int(row.Offset)+int(row.Length) > len(p.payload) {
			return Chunk{}, true, fmt.Errorf("part %s: chunk %d range %d+%d in %d byte payload: %w",
				p.Name, global, row.Offset, row.Length, len(p.payload), ErrPayloadOutOfBounds)
		}
		return Chunk{
			Text: p.payload[row.Offset : int(row.Offset)+int(row.Length)],
			Kind: row.Kind,
		}, true, nil
	}
	return Chunk{}, false, nil
}

// LocateChunk resolves a note's global chunk index to its text and split
// kind by scanning the note's parts in assigned order.
//
// Each part is read whole, validated, and its table scanned; the first
// match wins and later parts are not touched. Any read or validation
// failure aborts the lookup. After all parts are scanned without a match
// the lookup fails with ErrChunkNotFound.
//
// The returned text is an owned copy; it does not alias any entry buffer.
func LocateChunk(ctx context.Context, src EntryReader, note *Note, global uint16) (Chunk, error) {
	if global >= note.TotalChunks {
		return Chunk{}, fmt.Errorf("note %d: chunk %d of %d: %w",
			note.ID, global, note.TotalChunks, ErrChunkOutOfRange)
	}

	for i := uint16(0); i < note.PartCount; i++ {
		name := PartName(note.FirstPartID + i)
		data, err := src.ReadEntry(ctx, name)
		if err != nil {
			return Chunk{}, fmt.Errorf("note %d: part %s: %w", note.ID, name, err)
		}
		part, err := DecodePart(name, data)
		if err != nil {
			return Chunk{}, fmt.Errorf("note %d: %w", note.ID, err)
		}
		chunk, ok, err := part.Chunk(global)
		if err != nil {
			return Chunk{}, fmt.Errorf("note %d: %w", note.ID, err)
		}
		if ok {
			text := make([]byte, len(chunk.Text))
			copy(text, chunk.Text)
			return Chunk{Text: text, Kind: chunk.Kind}, nil
		}
	}
	return Chunk{}, fmt.Errorf("note %d: chunk %d: %w", note.ID, global, ErrChunkNotFound)
}
