// Package ingest drives batch extraction of kanji entries into the
// store. Processing is strictly sequential: one fetch, one upsert per
// item, no shared mutable state. A failing item is logged and skipped;
// only context cancellation stops the batch.
package ingest

import (
	"context"
	"database/sql"
	"log"

	"github.com/morg/kanjidex/pkg/db"
	"github.com/morg/kanjidex/pkg/kanjipedia"
)

// Ingester processes a list of entry URLs into the database.
type Ingester struct {
	DB      *sql.DB
	Fetcher *kanjipedia.Fetcher
	// Logger receives one diagnostic line per failed item. nil means
	// no logging.
	Logger *log.Logger
	// OnProgress is called after each item with the number processed
	// and the total.
	OnProgress func(current, total int)
}

// NewIngester creates an Ingester fetching from the live site.
func NewIngester(conn *sql.DB) *Ingester {
	return &Ingester{
		DB:      conn,
		Fetcher: kanjipedia.NewFetcher(),
	}
}

// Result summarizes one batch run.
type Result struct {
	Added  int
	Failed int
}

// Run processes the URLs in order. Each item is fetched, parsed, and
// upserted before the next one starts. The returned error is non-nil
// only when the context is canceled; per-item failures are counted
// and logged, never propagated.
func (ig *Ingester) Run(ctx context.Context, urls []string) (Result, error) {
	var res Result
	total := len(urls)
	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := ig.processOne(ctx, u); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			res.Failed++
			if ig.Logger != nil {
				ig.Logger.Printf("skipping %s: %v", u, err)
			}
		} else {
			res.Added++
		}
		if ig.OnProgress != nil {
			ig.OnProgress(i+1, total)
		}
	}
	return res, nil
}

func (ig *Ingester) processOne(ctx context.Context, pageURL string) error {
	entry, err := ig.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return err
	}
	return db.UpsertKanji(ig.DB, entry.ToRecord())
}
