package ntx

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/meigma/ntx/internal/ntxfmt"
	"github.com/meigma/ntx/store"
)

// Re-export types from internal/ntxfmt for the public API.
type (
	// Note describes one logical document in the index.
	Note = ntxfmt.Note

	// Chunk is one decoded span of note text.
	Chunk = ntxfmt.Chunk

	// SplitKind tags how the producer divided the source text at a
	// chunk boundary. The reader passes it through unchanged.
	SplitKind = ntxfmt.SplitKind

	// Part is a decoded part entry, exposed for inspection tools.
	Part = ntxfmt.Part

	// TableEntry is one row of a part's chunk table.
	TableEntry = ntxfmt.TableEntry
)

// Re-export split kind constants.
const (
	SplitNone       = ntxfmt.SplitNone
	SplitSentence   = ntxfmt.SplitSentence
	SplitParagraph  = ntxfmt.SplitParagraph
	SplitWhitespace = ntxfmt.SplitWhitespace
	SplitHard       = ntxfmt.SplitHard
)

// IndexName is the archive entry holding the note index.
const IndexName = ntxfmt.IndexName

// PartName derives the archive entry name for a part id (id 7 -> "NTX0007").
// The derivation is a format contract; replacement storage backends must
// preserve it exactly.
func PartName(id uint16) string {
	return ntxfmt.PartName(id)
}

// DecodePart validates and decodes a single part entry. Most callers
// want Pack.Chunk; DecodePart exists for inspection tools that work on
// raw entry bytes.
func DecodePart(name string, data []byte) (*Part, error) {
	return ntxfmt.DecodePart(name, data)
}

// Pack provides read access to the notes of one NTX pack.
//
// The index is decoded once in Open and immutable afterwards, so a Pack
// is safe for concurrent use; chunk lookups share no mutable state.
type Pack struct {
	store     store.Store
	indexName string
	notes     []Note
	logger    *slog.Logger
}

// Option configures a Pack.
type Option func(*Pack)

// WithLogger sets the logger for debug diagnostics. By default nothing
// is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pack) {
		p.logger = logger
	}
}

// WithIndexName overrides the archive entry name the index is read from.
func WithIndexName(name string) Option {
	return func(p *Pack) {
		p.indexName = name
	}
}

// Open reads and decodes the pack's index from st.
//
// A pack with zero notes is valid and yields a usable empty Pack; every
// decode failure yields a nil Pack and no partial state.
func Open(ctx context.Context, st store.Store, opts ...Option) (*Pack, error) {
	p := &Pack{
		store:     st,
		indexName: ntxfmt.IndexName,
	}
	for _, opt := range opts {
		opt(p)
	}

	data, err := st.ReadEntry(ctx, p.indexName)
	if err != nil {
		return nil, fmt.Errorf("ntx: index %s: %w", p.indexName, err)
	}
	notes, err := ntxfmt.DecodeIndex(data)
	if err != nil {
		return nil, err
	}
	p.notes = notes
	p.log().Debug("index loaded", "entry", p.indexName, "notes", len(notes))
	return p, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Pack) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// Len returns the number of notes in the pack.
func (p *Pack) Len() int {
	return len(p.notes)
}

// Note returns the i'th note in browse order.
func (p *Pack) Note(i int) Note {
	return p.notes[i]
}

// NoteByID returns the note with the given id.
func (p *Pack) NoteByID(id uint16) (Note, bool) {
	for _, note := range p.notes {
		if note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// Notes returns an iterator over all notes in browse order.
func (p *Pack) Notes() iter.Seq[Note] {
	return func(yield func(Note) bool) {
		for _, note := range p.notes {
			if !yield(note) {
				return
			}
		}
	}
}

// Chunk resolves a note's global chunk index to its text and split kind.
//
// Parts are scanned in assigned order and the first table row matching
// the index wins; any part read or validation failure aborts the lookup.
// The returned text is an owned copy.
func (p *Pack) Chunk(ctx context.Context, note Note, global uint16) (Chunk, error) {
	chunk, err := ntxfmt.LocateChunk(ctx, p.store, &note, global)
	if err != nil {
		return Chunk{}, err
	}
	p.log().Debug("chunk located", "note", note.ID, "chunk", global, "bytes", len(chunk.Text))
	return chunk, nil
}

// NoteText reads and concatenates all of a note's chunks in order.
func (p *Pack) NoteText(ctx context.Context, note Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(note.TotalTextBytes))
	for i := uint16(0); i < note.TotalChunks; i++ {
		chunk, err := ntxfmt.LocateChunk(ctx, p.store, &note, i)
		if err != nil {
			return nil, err
		}
		buf.Write(chunk.Text)
	}
	return buf.Bytes(), nil
}
