// Package ntx reads NTX note packs: an index entry describing a set of
// notes plus numbered part entries holding each note's text chunks.
//
// A pack lives in any flat namespace of short-named blobs. The store
// package provides backends for directories of files, in-memory maps,
// HTTP endpoints and S3-compatible object storage; anything implementing
// store.Store works.
//
// # Quick Start
//
// Open a pack produced into a directory and read a note chunk by chunk:
//
//	p, err := ntx.Open(ctx, store.NewDir("./pack"))
//	if err != nil {
//	    return err
//	}
//	for note := range p.Notes() {
//	    for i := uint16(0); i < note.TotalChunks; i++ {
//	        chunk, err := p.Chunk(ctx, note, i)
//	        if err != nil {
//	            return err
//	        }
//	        render(chunk.Text, chunk.Kind)
//	    }
//	}
//
// # Caching
//
// Chunk lookups re-read part entries as a reader pages through a note.
// Wrap a remote store with the cache package to keep hot entries in
// memory:
//
//	p, err := ntx.Open(ctx, cache.New(remoteStore))
//
// The reader is read-only. Producing packs is the job of a separate
// build tool; this module only decodes format version 1.
package ntx
