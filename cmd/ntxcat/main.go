// Command ntxcat inspects NTX note packs.
//
// Usage:
//
//	ntxcat -dir ./pack list
//	ntxcat -dir ./pack cat 3
//	ntxcat -dir ./pack parts 3
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/meigma/ntx"
	"github.com/meigma/ntx/cache"
	"github.com/meigma/ntx/store"
	"github.com/meigma/ntx/store/httpstore"
	s3store "github.com/meigma/ntx/store/s3"
)

type config struct {
	dir       string
	baseURL   string
	s3Bucket  string
	s3Region  string
	s3Prefix  string
	indexName string
	verbose   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dir, "dir", "", "read pack entries from this directory")
	flag.StringVar(&cfg.baseURL, "url", "", "read pack entries from this base URL")
	flag.StringVar(&cfg.s3Bucket, "s3-bucket", "", "read pack entries from this S3 bucket")
	flag.StringVar(&cfg.s3Region, "s3-region", "us-east-1", "S3 region")
	flag.StringVar(&cfg.s3Prefix, "s3-prefix", "", "S3 object key prefix")
	flag.StringVar(&cfg.indexName, "index", "", "override the index entry name")
	flag.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	flag.Parse()

	if err := run(context.Background(), &cfg, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "ntxcat:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command: list, cat or parts")
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	st, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	opts := []ntx.Option{ntx.WithLogger(logger)}
	if cfg.indexName != "" {
		opts = append(opts, ntx.WithIndexName(cfg.indexName))
	}
	p, err := ntx.Open(ctx, st, opts...)
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return list(p)
	case "cat":
		note, err := noteArg(p, args)
		if err != nil {
			return err
		}
		return cat(ctx, p, note)
	case "parts":
		note, err := noteArg(p, args)
		if err != nil {
			return err
		}
		return parts(ctx, st, note)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newStore(ctx context.Context, cfg *config) (store.Store, error) {
	switch {
	case cfg.dir != "":
		return store.NewDir(cfg.dir), nil
	case cfg.baseURL != "":
		return cache.New(httpstore.New(cfg.baseURL)), nil
	case cfg.s3Bucket != "":
		st, err := s3store.New(ctx, s3store.Config{
			Region: cfg.s3Region,
			Bucket: cfg.s3Bucket,
			Prefix: cfg.s3Prefix,
		})
		if err != nil {
			return nil, err
		}
		// Remote reads benefit from keeping hot part entries in memory.
		return cache.New(st), nil
	default:
		return nil, fmt.Errorf("one of -dir, -url or -s3-bucket is required")
	}
}

func noteArg(p *ntx.Pack, args []string) (ntx.Note, error) {
	if len(args) < 2 {
		return ntx.Note{}, fmt.Errorf("%s: missing note id", args[0])
	}
	id, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return ntx.Note{}, fmt.Errorf("bad note id %q: %w", args[1], err)
	}
	note, ok := p.NoteByID(uint16(id))
	if !ok {
		return ntx.Note{}, fmt.Errorf("no note with id %d", id)
	}
	return note, nil
}

func list(p *ntx.Pack) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPARTS\tCHUNKS\tBYTES\tTITLE")
	for note := range p.Notes() {
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n",
			note.ID, note.PartCount, note.TotalChunks, note.TotalTextBytes, title)
	}
	return w.Flush()
}

func cat(ctx context.Context, p *ntx.Pack, note ntx.Note) error {
	text, err := p.NoteText(ctx, note)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(text)
	return err
}

func parts(ctx context.Context, st store.Store, note ntx.Note) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tROW\tGLOBAL\tOFFSET\tLENGTH\tKIND")
	for i := uint16(0); i < note.PartCount; i++ {
		name := ntx.PartName(note.FirstPartID + i)
		data, err := st.ReadEntry(ctx, name)
		if err != nil {
			return err
		}
		part, err := ntx.DecodePart(name, data)
		if err != nil {
			return err
		}
		for row := 0; row < part.NumChunks(); row++ {
			entry := part.TableEntry(row)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
				name, row, entry.GlobalIndex, entry.Offset, entry.Length, entry.Kind)
		}
	}
	return w.Flush()
}
