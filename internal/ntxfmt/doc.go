// Package ntxfmt decodes the NTX v1 binary entry layouts.
//
// An NTX pack is a set of named archive entries: a single index entry
// listing the notes, and numbered part entries holding each note's text
// chunks plus a table describing them. All integers are little-endian
// and all offsets are absolute within their entry.
//
// Decoders validate every declared offset and length against the actual
// entry size before dereferencing it; corrupt or truncated input yields a
// sentinel error, never a partial result.
package ntxfmt
