package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/alan-mat/kgsearch/internal/config"
	"github.com/alan-mat/kgsearch/internal/provider"
	"golang.org/x/sync/errgroup"
)

type batchResult struct {
	Query    string                    `json:"query"`
	Response *api.EntitySearchResponse `json:"response,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// searchAll runs every query as its own search. A failed query is recorded in
// its result and does not stop the others. Results keep the order of queries.
func searchAll(ctx context.Context, s provider.EntitySearcher, conf *config.Config, queries []config.Query, concurrency int) []batchResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]batchResult, len(queries))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, q := range queries {
		i, q := i, q
		results[i].Query = q.Label()
		g.Go(func() error {
			resp, err := s.Search(ctx, q.Request(conf))
			if err != nil {
				slog.Warn("batch query failed", "query", results[i].Query, "err", err)
				results[i].Error = err.Error()
				return nil
			}
			results[i].Response = resp
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func runBatch(ctx context.Context, w io.Writer, s provider.EntitySearcher, conf *config.Config, cmd *batchCmd) error {
	b, err := config.ReadBatch(cmd.File)
	if err != nil {
		return err
	}

	results := searchAll(ctx, s, conf, b.Queries, cmd.Concurrency)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	slog.Info("batch finished", "queries", len(results), "failed", failed)

	if conf.Output == config.OutputJSON {
		return writeJSON(w, results)
	}

	for _, r := range results {
		fmt.Fprintf(w, "# %s\n", r.Query)
		if r.Error != "" {
			fmt.Fprintf(w, "error: %s\n\n", r.Error)
			continue
		}
		printWarnings(r.Response.Warnings)
		if err := writeTable(w, r.Response.Entities); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return nil
}
