package ntx_test

import (
	"context"
	"fmt"

	"github.com/meigma/ntx"
	"github.com/meigma/ntx/internal/testutil"
	"github.com/meigma/ntx/store"
)

func Example() {
	st := store.NewMem(map[string][]byte{
		"NTXIDX": testutil.BuildIndex(
			testutil.NoteSpec{ID: 1, FirstPartID: 1, PartCount: 1, TotalChunks: 2, TotalTextBytes: 12, Title: "Greeting"},
		),
		"NTX0001": testutil.BuildPartFromTexts(1, 0, 1, 0, []string{"Hello, ", "World"}, nil),
	})

	ctx := context.Background()
	p, err := ntx.Open(ctx, st)
	if err != nil {
		panic(err)
	}

	for note := range p.Notes() {
		text, err := p.NoteText(ctx, note)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s\n", note.Title, text)
	}
	// Output: Greeting: Hello, World
}
