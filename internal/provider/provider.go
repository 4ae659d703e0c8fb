package provider

import (
	"context"
	"errors"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/alan-mat/kgsearch/internal/provider/kgsearch"
)

var (
	ErrInvalidEntitySearcherType = errors.New("no entity searcher found for given type")
)

const (
	EntitySearcherTypeKnowledgeGraph EntitySearcherType = iota
)

type EntitySearcherType int

type EntitySearcher interface {
	Search(ctx context.Context, req api.EntitySearchRequest) (*api.EntitySearchResponse, error)
}

func NewEntitySearcher(t EntitySearcherType, opts ...kgsearch.Option) (EntitySearcher, error) {
	switch t {
	case EntitySearcherTypeKnowledgeGraph:
		return kgsearch.New(opts...), nil
	default:
		return nil, ErrInvalidEntitySearcherType
	}
}
