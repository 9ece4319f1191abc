// Package testutil builds NTX index and part entries for tests,
// mirroring the pack producer's encoding.
package testutil

import "encoding/binary"

// NoteSpec describes one index record.
type NoteSpec struct {
	ID             uint16
	FirstPartID    uint16
	PartCount      uint16
	TotalChunks    uint16
	TotalTextBytes uint32
	Title          string
}

// ChunkSpec describes one chunk table row.
type ChunkSpec struct {
	Offset uint16
	Length uint16
	Kind   uint8
	Global uint16
}

// BuildIndex encodes an index entry with the given notes.
func BuildIndex(notes ...NoteSpec) []byte {
	buf := make([]byte, 0, 16+len(notes)*16)
	buf = append(buf, "NTXI"...)
	buf = appendU16(buf, 1)                  // version
	buf = appendU16(buf, 16)                 // header size
	buf = appendU16(buf, uint16(len(notes))) // note count
	buf = appendU16(buf, 0)                  // reserved
	buf = appendU32(buf, 0)                  // reserved

	for _, n := range notes {
		buf = appendU16(buf, n.ID)
		buf = appendU16(buf, n.FirstPartID)
		buf = appendU16(buf, n.PartCount)
		buf = appendU16(buf, n.TotalChunks)
		buf = appendU32(buf, n.TotalTextBytes)
		buf = append(buf, byte(len(n.Title)), 0)
		buf = append(buf, n.Title...)
	}
	return buf
}

// BuildPart encodes a part entry with the given chunk table and payload.
// Chunk offsets are relative to the payload region; the header's table
// and payload offsets are laid out back to back after the header, as the
// producer writes them.
func BuildPart(noteID, partIndex, partCount uint16, chunks []ChunkSpec, payload []byte) []byte {
	tableOff := uint16(24)
	payloadOff := tableOff + uint16(len(chunks))*8

	buf := make([]byte, 0, int(payloadOff)+len(payload))
	buf = append(buf, "NTXP"...)
	buf = appendU16(buf, 1)  // version
	buf = appendU16(buf, 24) // header size
	buf = appendU16(buf, noteID)
	buf = appendU16(buf, partIndex)
	buf = appendU16(buf, partCount)
	buf = appendU16(buf, uint16(len(chunks)))
	buf = appendU16(buf, tableOff)
	buf = appendU16(buf, payloadOff)
	buf = appendU16(buf, uint16(len(payload)))
	buf = appendU16(buf, 0) // reserved

	for _, c := range chunks {
		buf = appendU16(buf, c.Offset)
		buf = appendU16(buf, c.Length)
		buf = append(buf, c.Kind, 0)
		buf = appendU16(buf, c.Global)
	}
	return append(buf, payload...)
}

// BuildPartFromTexts encodes a part whose payload is the concatenation
// of texts, one chunk per text, with global indices firstGlobal,
// firstGlobal+1, ... and the given split kinds (kinds may be nil).
func BuildPartFromTexts(noteID, partIndex, partCount, firstGlobal uint16, texts []string, kinds []uint8) []byte {
	var payload []byte
	chunks := make([]ChunkSpec, 0, len(texts))
	for i, text := range texts {
		var kind uint8
		if kinds != nil {
			kind = kinds[i]
		}
		chunks = append(chunks, ChunkSpec{
			Offset: uint16(len(payload)),
			Length: uint16(len(text)),
			Kind:   kind,
			Global: firstGlobal + uint16(i),
		})
		payload = append(payload, text...)
	}
	return BuildPart(noteID, partIndex, partCount, chunks, payload)
}

func appendU16(buf []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, v)
}

func appendU32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}
