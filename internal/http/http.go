// Copyright 2025 Alan Matykiewicz
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the
// Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.

package http

import (
	"context"
	"fmt"
	"io"
	gohttp "net/http"
	"time"
)

const (
	MethodGet = "GET"

	StatusOK = gohttp.StatusOK

	DefaultTimeout = 60 * time.Second

	// MaxErrorBodyLength bounds how much of an error response ends up in messages.
	MaxErrorBodyLength = 512
)

type Client struct {
	httpClient *gohttp.Client

	endpoint  string
	userAgent string
}

type ClientOption func(*Client)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

func NewClient(endpoint string, opts ...ClientOption) Client {
	c := Client{
		endpoint: endpoint,
		httpClient: &gohttp.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying net/http client. A nil client is ignored.
func WithHTTPClient(hc *gohttp.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Get sends exactly one GET request to uri. uri is used verbatim, it is not
// re-escaped. Non-2xx statuses are not treated as errors here, the caller
// decides what to make of the body.
func (c *Client) Get(ctx context.Context, uri string) (*Response, error) {
	req, err := gohttp.NewRequestWithContext(ctx, MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Truncate shortens error response bodies to MaxErrorBodyLength bytes.
func Truncate(body []byte) string {
	if len(body) > MaxErrorBodyLength {
		body = body[:MaxErrorBodyLength]
	}
	return string(body)
}
