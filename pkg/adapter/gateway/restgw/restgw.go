// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package restgw implements the gateway port over the backend REST
// API. Every operation issues exactly one HTTP request with a fixed
// verb and path under the configured base URL; there are no retries
// and no caching. Network failures and non-2xx responses surface as
// errors (the latter as cerr.Error carrying the upstream status), and
// response bodies are only decoded into the documented payload
// shapes.
package restgw

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"github.com/sayara/garagedash/pkg/core/cerr"
	"github.com/sayara/garagedash/pkg/core/gateway"
)

// Gateway talks to one backend deployment. It is safe for concurrent
// use; it keeps no request state beyond the shared http.Client.
type Gateway struct {
	base  *url.URL
	hc    *http.Client
	token string
}

// Option is a functional option for the Gateway.
type Option func(g *Gateway) error

// WithHTTPClient replaces the underlying http.Client, e.g. to set a
// transport-level timeout. By default the zero-configuration client
// is used, deferring to the transport defaults.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *Gateway) error {
		if hc == nil {
			return errors.New("nil http client")
		}
		g.hc = hc
		return nil
	}
}

// WithToken attaches a bearer token to every request. Session
// management itself is owned by the backend; the gateway only
// forwards the opaque token it is given.
func WithToken(token string) Option {
	return func(g *Gateway) error {
		g.token = token
		return nil
	}
}

// New instantiates a Gateway for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Gateway, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}
	g := &Gateway{base: base, hc: &http.Client{}}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return g, nil
}

// Interface checks; the use cases only see the gateway ports.
var (
	_ gateway.Clients  = (*Gateway)(nil)
	_ gateway.Orders   = (*Gateway)(nil)
	_ gateway.Services = (*Gateway)(nil)
)

// do performs the single HTTP request of one gateway operation.
// The in payload, if any, is JSON-encoded; the response body, if out
// is non-nil, is JSON-decoded into it. Non-2xx statuses become
// cerr.Error values with whatever detail message the body carried.
func (g *Gateway) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	in, out any,
) error {
	u := g.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("creating %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	resp, err := g.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK ||
		resp.StatusCode >= http.StatusMultipleChoices {
		return cerr.FromStatus(resp.StatusCode, errDetail(resp.Body))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// errDetail extracts a human-readable message from an error response
// body, accepting the common "message" and "error" envelope keys.
// Bodies that are not JSON (or carry neither key) yield no detail.
func errDetail(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
