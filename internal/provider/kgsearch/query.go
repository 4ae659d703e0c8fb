package kgsearch

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/alan-mat/kgsearch/internal/api"
)

// normalize applies the parameter rules that run before any request is made.
// Adjustments come back as warnings, violations as errors.
func normalize(req api.EntitySearchRequest) (api.EntitySearchRequest, []api.Warning, error) {
	var warnings []api.Warning

	switch {
	case req.Limit == 0:
		req.Limit = api.EntitySearchDefaultLimit
	case req.Limit > api.EntitySearchMaxLimit:
		warnings = append(warnings, api.Warning{
			Param:   "limit",
			Message: fmt.Sprintf("limit %d exceeds maximum, using %d", req.Limit, api.EntitySearchMaxLimit),
		})
		req.Limit = api.EntitySearchMaxLimit
	case req.Limit < 0:
		warnings = append(warnings, api.Warning{
			Param:   "limit",
			Message: fmt.Sprintf("limit %d is negative, using 1", req.Limit),
		})
		req.Limit = 1
	}

	if len(req.Keywords) > 1 {
		warnings = append(warnings, api.Warning{
			Param:   "keyword",
			Message: fmt.Sprintf("only one keyword is supported, using '%s' and dropping %d more", req.Keywords[0], len(req.Keywords)-1),
		})
	}
	if kw := req.Keyword(); kw != "" {
		req.Keywords = []string{kw}
	} else {
		req.Keywords = nil
	}

	req.IDs = compact(req.IDs)
	req.Types = compact(req.Types)

	if len(req.Keywords) > 0 && len(req.IDs) > 0 {
		return req, nil, ErrConflictingParameters{}
	}

	if req.Token == "" {
		return req, nil, ErrInvalidParameter{Name: "token", Reason: "must not be empty"}
	}

	return req, warnings, nil
}

// buildQuery serializes a normalized request. Parameters are written in a
// fixed order; ids and types are left out entirely when empty, everything else
// is always present.
func buildQuery(req api.EntitySearchRequest) string {
	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		// ids contain '/', escape each one on its own
		ids = append(ids, url.QueryEscape(id))
	}

	params := []struct {
		name   string
		values []string
	}{
		{"query", []string{req.Keyword()}},
		{"key", []string{req.Token}},
		{"languages", []string{req.Language}},
		{"ids", ids},
		{"types", req.Types},
		{"prefix", []string{strconv.FormatBool(req.Prefix)}},
		{"limit", []string{strconv.Itoa(req.Limit)}},
		{"indent", []string{"false"}},
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		if len(p.values) == 0 {
			continue
		}
		parts = append(parts, p.name+"="+strings.Join(p.values, "&"+p.name+"="))
	}

	return strings.Join(parts, "&")
}

const upperhex = "0123456789ABCDEF"

// escapeURL percent-encodes a complete URL, leaving unreserved characters and
// ":/?&=" untouched. '%' is not kept, so components that were escaped before
// come out escaped twice.
func escapeURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if keepInURL(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

func keepInURL(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("_.-~:/?&=", c) >= 0
}

func compact(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
