package main

import (
	"context"
	"fmt"
	"io"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/alan-mat/kgsearch/internal/config"
	"github.com/alan-mat/kgsearch/internal/provider"
	"github.com/alan-mat/kgsearch/internal/provider/kgsearch"
)

type preparer interface {
	Prepare(req api.EntitySearchRequest) (*kgsearch.Prepared, error)
}

func (c searchCmd) request(conf *config.Config) api.EntitySearchRequest {
	req := api.EntitySearchRequest{
		Token:    conf.Token,
		Keywords: c.Keywords,
		IDs:      c.IDs,
		Language: c.Language,
		Types:    c.Types,
		Prefix:   c.Prefix,
		Limit:    c.Limit,
	}
	if req.Language == "" {
		req.Language = conf.Language
	}
	if req.Limit == 0 {
		req.Limit = conf.Limit
	}
	return req
}

func runSearch(ctx context.Context, w io.Writer, s provider.EntitySearcher, conf *config.Config, cmd *searchCmd) error {
	req := cmd.request(conf)

	if cmd.DryRun {
		p, ok := s.(preparer)
		if !ok {
			return fmt.Errorf("entity searcher %T does not support dry runs", s)
		}
		prep, err := p.Prepare(req)
		if err != nil {
			return err
		}
		printWarnings(prep.Warnings)
		_, err = fmt.Fprintln(w, prep.RequestURL)
		return err
	}

	resp, err := s.Search(ctx, req)
	if err != nil {
		return err
	}

	if conf.Output == config.OutputJSON {
		return writeJSON(w, resp)
	}
	printWarnings(resp.Warnings)
	return writeTable(w, resp.Entities)
}
