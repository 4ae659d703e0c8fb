package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/goccy/go-yaml"
)

var ErrEmptyBatch = errors.New("batch file contains no queries")

// Query is one entry of a batch file. Unset fields fall back to the config.
type Query struct {
	Keyword  string   `yaml:"keyword"`
	IDs      []string `yaml:"ids"`
	Language string   `yaml:"language"`
	Types    []string `yaml:"types"`
	Prefix   bool     `yaml:"prefix"`
	Limit    int      `yaml:"limit"`
}

type Batch struct {
	Queries []Query `yaml:"queries"`
}

func ReadBatch(path string) (*Batch, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Batch
	if err := yaml.Unmarshal(file, &b); err != nil {
		return nil, fmt.Errorf("failed to parse batch file '%s': %w", path, err)
	}

	if len(b.Queries) == 0 {
		return nil, ErrEmptyBatch
	}

	return &b, nil
}

// Request turns q into a search request, filling gaps from conf.
func (q Query) Request(conf *Config) api.EntitySearchRequest {
	req := api.EntitySearchRequest{
		Token:    conf.Token,
		IDs:      q.IDs,
		Language: q.Language,
		Types:    q.Types,
		Prefix:   q.Prefix,
		Limit:    q.Limit,
	}

	if q.Keyword != "" {
		req.Keywords = []string{q.Keyword}
	}
	if req.Language == "" {
		req.Language = conf.Language
	}
	if req.Limit == 0 {
		req.Limit = conf.Limit
	}

	return req
}

// Label names the query in output.
func (q Query) Label() string {
	if q.Keyword != "" {
		return q.Keyword
	}
	return fmt.Sprintf("%v", q.IDs)
}
