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
	"bytes"
	"context"
	"encoding/json"
	"io"
	gohttp "net/http"
	"net/url"
	"time"
)

// Common HTTP method, as defined in net/http package
const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH" // RFC 5789
	MethodDelete  = "DELETE"
	MethodConnect = "CONNECT"
	MethodOptions = "OPTIONS"
	MethodTrace   = "TRACE"
)

// Response carries the raw outcome of a single request. Interpreting the
// status code is left to the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	httpClient *gohttp.Client

	endpoint string
	apiKey   string
}

type ClientOption func(*Client)

// NewClient creates a client for the given endpoint. No timeout is set
// unless WithTimeout is given; the zero net/http default applies.
func NewClient(endpoint string, opts ...ClientOption) Client {
	c := Client{
		endpoint:   endpoint,
		httpClient: &gohttp.Client{},
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithApiKey sets the key sent in the 'x-api-key' request header.
func WithApiKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(hc *gohttp.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Request performs a single JSON request and returns the status code and
// raw body. It never retries; transport-level failures, including context
// cancellation, are returned unmodified, and no status code is treated as
// an error here.
func (c *Client) Request(ctx context.Context, method string, path string, payload map[string]any) (*Response, error) {
	uri, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, err
	}
	uri.Path = path

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := gohttp.NewRequestWithContext(ctx, method, uri.String(), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
