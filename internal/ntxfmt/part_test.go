package ntxfmt

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/ntx/internal/testutil"
	"github.com/meigma/ntx/store"
)

// helloWorldPart is the two-chunk part used throughout: payload
// "HelloWorld", chunk 0 = "Hello" (kind 0), chunk 1 = "World" (kind 1).
func helloWorldPart() []byte {
	return testutil.BuildPart(1, 0, 1, []testutil.ChunkSpec{
		{Offset: 0, Length: 5, Kind: 0, Global: 0},
		{Offset: 5, Length: 5, Kind: 1, Global: 1},
	}, []byte("HelloWorld"))
}

func TestDecodePart(t *testing.T) {
	t.Parallel()

	part, err := DecodePart("NTX0001", helloWorldPart())
	require.NoError(t, err)

	assert.Equal(t, "NTX0001", part.Name)
	assert.Equal(t, uint16(1), part.NoteID)
	assert.Equal(t, uint16(0), part.Index)
	assert.Equal(t, uint16(1), part.Count)
	require.Equal(t, 2, part.NumChunks())

	assert.Equal(t, TableEntry{Offset: 0, Length: 5, Kind: SplitNone, GlobalIndex: 0}, part.TableEntry(0))
	assert.Equal(t, TableEntry{Offset: 5, Length: 5, Kind: SplitSentence, GlobalIndex: 1}, part.TableEntry(1))
}

func TestDecodePart_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		corrupt func([]byte) []byte
		want    error
	}{
		{
			name:    "shorter than header",
			corrupt: func(b []byte) []byte { return b[:23] },
			want:    ErrTooSmall,
		},
		{
			name: "bad magic",
			corrupt: func(b []byte) []byte {
				copy(b, "NOPE")
				return b
			},
			want: ErrBadMagic,
		},
		{
			name: "version 2",
			corrupt: func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[4:6], 2)
				return b
			},
			want: ErrVersionMismatch,
		},
		{
			name: "wrong header size",
			corrupt: func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[6:8], 32)
				return b
			},
			want: ErrVersionMismatch,
		},
		{
			name: "payload overruns entry",
			corrupt: func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[20:22], 500)
				return b
			},
			want: ErrPayloadOutOfBounds,
		},
		{
			name: "chunk table overruns entry",
			corrupt: func(b []byte) []byte {
				binary.LittleEndian.PutUint16(b[14:16], 100)
				return b
			},
			want: ErrChunkTableOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			part, err := DecodePart("NTX0001", tt.corrupt(helloWorldPart()))
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, part)
		})
	}
}

func TestPartChunk_MatchesByEquality(t *testing.T) {
	t.Parallel()

	part, err := DecodePart("NTX0001", helloWorldPart())
	require.NoError(t, err)

	chunk, ok, err := part.Chunk(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("World"), chunk.Text)
	assert.Equal(t, SplitSentence, chunk.Kind)

	_, ok, err = part.Chunk(2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPartChunk_RangeOverrunsPayload(t *testing.T) {
	t.Parallel()

	data := testutil.BuildPart(1, 0, 1, []testutil.ChunkSpec{
		{Offset: 0, Length: 200, Kind: 0, Global: 0},
	}, []byte("short"))

	part, err := DecodePart("NTX0001", data)
	require.NoError(t, err)

	_, ok, err := part.Chunk(0)
	require.True(t, ok)
	require.ErrorIs(t, err, ErrPayloadOutOfBounds)
}

func testNote() Note {
	return Note{ID: 1, FirstPartID: 1, PartCount: 1, TotalChunks: 2, Title: "Test"}
}

func TestLocateChunk(t *testing.T) {
	t.Parallel()

	st := store.NewMem(map[string][]byte{"NTX0001": helloWorldPart()})
	note := testNote()

	chunk, err := LocateChunk(t.Context(), st, &note, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), chunk.Text)
	assert.Equal(t, SplitNone, chunk.Kind)

	chunk, err = LocateChunk(t.Context(), st, &note, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("World"), chunk.Text)
	assert.Equal(t, SplitSentence, chunk.Kind)
}

func TestLocateChunk_OutOfRange(t *testing.T) {
	t.Parallel()

	st := store.NewMem(map[string][]byte{"NTX0001": helloWorldPart()})
	note := testNote()

	_, err := LocateChunk(t.Context(), st, &note, 2)
	require.ErrorIs(t, err, ErrChunkOutOfRange)
}

func TestLocateChunk_NotFound(t *testing.T) {
	t.Parallel()

	// The index promises three chunks but the single part only indexes
	// two of them.
	st := store.NewMem(map[string][]byte{"NTX0001": helloWorldPart()})
	note := testNote()
	note.TotalChunks = 3

	_, err := LocateChunk(t.Context(), st, &note, 2)
	require.ErrorIs(t, err, ErrChunkNotFound)
}

func TestLocateChunk_UnsortedTable(t *testing.T) {
	t.Parallel()

	data := testutil.BuildPart(1, 0, 1, []testutil.ChunkSpec{
		{Offset: 5, Length: 5, Kind: 1, Global: 1},
		{Offset: 0, Length: 5, Kind: 0, Global: 0},
	}, []byte("HelloWorld"))
	st := store.NewMem(map[string][]byte{"NTX0001": data})
	note := testNote()

	chunk, err := LocateChunk(t.Context(), st, &note, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), chunk.Text)
}

func TestLocateChunk_SpansParts(t *testing.T) {
	t.Parallel()

	st := store.NewMem(map[string][]byte{
		"NTX0004": testutil.BuildPartFromTexts(9, 0, 2, 0, []string{"one", "two"}, nil),
		"NTX0005": testutil.BuildPartFromTexts(9, 1, 2, 2, []string{"three"}, []uint8{2}),
	})
	note := Note{ID: 9, FirstPartID: 4, PartCount: 2, TotalChunks: 3}

	chunk, err := LocateChunk(t.Context(), st, &note, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("three"), chunk.Text)
	assert.Equal(t, SplitParagraph, chunk.Kind)
}

func TestLocateChunk_StopsAtFirstMatch(t *testing.T) {
	t.Parallel()

	// The second part is missing; a chunk held by the first part must
	// still resolve because the scan stops at the first match.
	st := store.NewMem(map[string][]byte{
		"NTX0004": testutil.BuildPartFromTexts(9, 0, 2, 0, []string{"one", "two"}, nil),
	})
	note := Note{ID: 9, FirstPartID: 4, PartCount: 2, TotalChunks: 3}

	chunk, err := LocateChunk(t.Context(), st, &note, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), chunk.Text)

	// A chunk past the present parts hits the missing entry and the
	// whole lookup fails; missing parts are never skipped.
	_, err = LocateChunk(t.Context(), st, &note, 2)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLocateChunk_CorruptPartIsFatal(t *testing.T) {
	t.Parallel()

	bad := helloWorldPart()
	copy(bad, "NOPE")
	st := store.NewMem(map[string][]byte{"NTX0001": bad})
	note := testNote()

	_, err := LocateChunk(t.Context(), st, &note, 0)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestLocateChunk_ReturnsOwnedText(t *testing.T) {
	t.Parallel()

	st := store.NewMem(map[string][]byte{"NTX0001": helloWorldPart()})
	note := testNote()

	chunk, err := LocateChunk(t.Context(), st, &note, 0)
	require.NoError(t, err)
	for i := range chunk.Text {
		chunk.Text[i] = '!'
	}

	again, err := LocateChunk(t.Context(), st, &note, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), again.Text)
}

func TestLocateChunk_ContextCancelled(t *testing.T) {
	t.Parallel()

	st := store.NewMem(map[string][]byte{"NTX0001": helloWorldPart()})
	note := testNote()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LocateChunk(ctx, st, &note, 0)
	require.ErrorIs(t, err, context.Canceled)
}
