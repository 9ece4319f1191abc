package ntxfmt

// Entry names and magic literals of the NTX v1 format.
const (
	// IndexName is the archive entry holding the note index.
	IndexName = "NTXIDX"

	// partPrefix is the fixed prefix of part entry names.
	partPrefix = "NTX"

	indexMagic = "NTXI"
	partMagic  = "NTXP"

	// Version is the only supported format version.
	Version = 1

	// IndexHeaderSize is the fixed size of the index entry header.
	IndexHeaderSize = 16

	// PartHeaderSize is the fixed size of a part entry header.
	PartHeaderSize = 24

	// indexRecordFixedSize is the fixed portion of a note record,
	// before the variable-length title bytes.
	indexRecordFixedSize = 14

	// chunkEntrySize is the size of one chunk table row.
	chunkEntrySize = 8
)

// Note describes one logical document in the index.
//
// A note's text lives in PartCount consecutively numbered part entries
// starting at FirstPartID. Valid global chunk indices are
// 0..TotalChunks-1. Index order is the browse order and is preserved.
type Note struct {
	// ID is the note's unique identifier.
	ID uint16

	// FirstPartID is the numeric id of the note's first part entry.
	FirstPartID uint16

	// PartCount is the number of part entries holding the note's text.
	PartCount uint16

	// TotalChunks is the number of chunks across all of the note's parts.
	TotalChunks uint16

	// TotalTextBytes is the total text size across all parts.
	// Informational only; it is not used for bounds checking.
	TotalTextBytes uint32

	// Title is the note's display title. May be empty.
	Title string
}

// SplitKind tags how the producer divided the source text at a chunk
// boundary. The reader passes it through unchanged and attaches no
// meaning to it.
type SplitKind uint8

// Split kinds written by the pack producer.
const (
	SplitNone SplitKind = iota
	SplitSentence
	SplitParagraph
	SplitWhitespace
	SplitHard
)

// String returns the producer's name for the split kind.
func (k SplitKind) String() string {
	switch k {
	case SplitNone:
		return "none"
	case SplitSentence:
		return "sentence"
	case SplitParagraph:
		return "paragraph"
	case SplitWhitespace:
		return "whitespace"
	case SplitHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Chunk is one decoded span of note text.
type Chunk struct {
	// Text is the chunk's raw text bytes.
	Text []byte

	// Kind tags how the source text was split at this boundary.
	Kind SplitKind
}
