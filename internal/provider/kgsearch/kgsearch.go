package kgsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	gohttp "net/http"
	"strings"
	"time"

	"github.com/alan-mat/kgsearch/internal/api"
	"github.com/alan-mat/kgsearch/internal/http"
	"github.com/google/uuid"
)

const (
	Endpoint  = "https://kgsearch.googleapis.com/v1/entities:search"
	UserAgent = "kgsearch-go/0.1"

	idPrefix = "kg:"
)

type searchResponse struct {
	Items []*searchItem `json:"itemListElement"`
}

type searchItem struct {
	Result      *entityResult `json:"result"`
	ResultScore float64       `json:"resultScore"`
}

type entityResult struct {
	ID                  string               `json:"@id"`
	Name                string               `json:"name"`
	Types               typeList             `json:"@type"`
	Description         string               `json:"description"`
	DetailedDescription *detailedDescription `json:"detailedDescription"`
}

type detailedDescription struct {
	ArticleBody string `json:"articleBody"`
	URL         string `json:"url"`
	License     string `json:"license"`
}

// typeList accepts "@type" as either a single string or an array of strings.
type typeList []string

func (t *typeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = typeList{s}
		return nil
	}

	var ss []string
	if err := json.Unmarshal(data, &ss); err != nil {
		return err
	}
	*t = ss
	return nil
}

type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Prepared is a validated request together with the URLs it maps to.
type Prepared struct {
	Params     api.EntitySearchRequest
	RawURL     string
	RequestURL string
	Warnings   []api.Warning
}

type Option func(*options)

type options struct {
	endpoint   string
	timeout    time.Duration
	httpClient *gohttp.Client
}

func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		if endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithHTTPClient(hc *gohttp.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

type KnowledgeGraphProvider struct {
	client http.Client
}

func New(opts ...Option) *KnowledgeGraphProvider {
	o := &options{
		endpoint: Endpoint,
	}
	for _, opt := range opts {
		opt(o)
	}

	c := http.NewClient(
		o.endpoint,
		http.WithHTTPClient(o.httpClient),
		http.WithTimeout(o.timeout),
		http.WithUserAgent(UserAgent),
	)
	p := &KnowledgeGraphProvider{
		client: c,
	}
	return p
}

// Prepare validates req and builds the request URL without sending anything.
func (p KnowledgeGraphProvider) Prepare(req api.EntitySearchRequest) (*Prepared, error) {
	params, warnings, err := normalize(req)
	if err != nil {
		return nil, err
	}

	raw := p.client.Endpoint() + "?" + buildQuery(params)

	return &Prepared{
		Params:     params,
		RawURL:     raw,
		RequestURL: escapeURL(raw),
		Warnings:   warnings,
	}, nil
}

func (p KnowledgeGraphProvider) Search(ctx context.Context, req api.EntitySearchRequest) (*api.EntitySearchResponse, error) {
	requestID := uuid.NewString()

	prep, err := p.Prepare(req)
	if err != nil {
		return nil, err
	}

	for _, w := range prep.Warnings {
		slog.Warn("adjusted search parameter", "id", requestID, "param", w.Param, "msg", w.Message)
	}
	slog.Info("searching entities", "id", requestID, "query", prep.Params.Keyword(), "ids", len(prep.Params.IDs), "limit", prep.Params.Limit)

	resp, err := p.client.Get(ctx, prep.RequestURL)
	if err != nil {
		return nil, fmt.Errorf("entity search request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := decodeError(resp)
		slog.Error("entity search rejected", "id", requestID, "status", resp.StatusCode, "code", apiErr.Code, "msg", apiErr.Message)
		return nil, apiErr
	}

	var searchResp searchResponse
	if err := json.Unmarshal(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to deserialize entity search response: %w", err)
	}

	entities := make([]*api.Entity, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		entities = append(entities, toEntity(item))
	}
	slog.Debug("entity search completed", "id", requestID, "entities", len(entities))

	params := prep.Params
	params.Token = ""

	return &api.EntitySearchResponse{
		Type:       api.EntitySearchResultType,
		RequestID:  requestID,
		Params:     params,
		RawURL:     prep.RawURL,
		RequestURL: prep.RequestURL,
		Entities:   entities,
		Warnings:   prep.Warnings,
	}, nil
}

func toEntity(item *searchItem) *api.Entity {
	e := &api.Entity{
		Types: []string{},
	}
	if item == nil || item.Result == nil {
		return e
	}

	e.Score = item.ResultScore
	r := item.Result

	e.ID = strings.TrimPrefix(r.ID, idPrefix)
	e.Name = r.Name
	e.Description = r.Description
	if len(r.Types) > 0 {
		e.Types = []string(r.Types)
	}
	if r.DetailedDescription != nil {
		body := r.DetailedDescription.ArticleBody
		e.DetailedDescription = &body
	}

	return e
}

// decodeError maps an error response onto ErrAPI. Bodies that do not carry
// the {"error": {...}} envelope fall back to the HTTP status and raw text.
func decodeError(resp *http.Response) ErrAPI {
	apiErr := ErrAPI{
		StatusCode: resp.StatusCode,
		Code:       resp.StatusCode,
		Message:    strings.TrimSpace(http.Truncate(resp.Body)),
	}

	var errResp errorResponse
	if err := json.Unmarshal(resp.Body, &errResp); err != nil || errResp.Error == nil {
		return apiErr
	}

	if errResp.Error.Code != 0 {
		apiErr.Code = errResp.Error.Code
	}
	if errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
	}
	apiErr.Status = errResp.Error.Status

	return apiErr
}
