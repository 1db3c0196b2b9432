// Package apiclient is the request layer in front of the campus-check server. Every
// request carries the session token when one exists.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	CurrentToken(ctx context.Context) (string, bool)
}

// Invalidator is implemented by token sources that want to hear about a rejected token.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// New returns a client for baseURL. tokens may be nil, in which case every request
// is sent unauthenticated.
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithTokenSource returns a copy of c that authorizes requests with tokens.
func (c *Client) WithTokenSource(tokens TokenSource) *Client {
	cp := *c
	cp.tokens = tokens
	return &cp
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Do sends one request and decodes a 2xx JSON body into out (skipped when out is nil).
// Failures are *NetworkError, *HTTPError or *DecodeError. No retries.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var sentToken bool
	if c.tokens != nil {
		if token, ok := c.tokens.CurrentToken(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			sentToken = true
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if res.StatusCode == http.StatusUnauthorized && sentToken {
			c.rejectToken(ctx)
		}
		return &HTTPError{Method: method, Path: path, Status: res.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &DecodeError{Method: method, Path: path, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Method: method, Path: path, Err: err}
	}
	return nil
}

func (c *Client) rejectToken(ctx context.Context) {
	inv, ok := c.tokens.(Invalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		log.Println("❌ Failed to clear rejected session token:", err)
		return
	}
	log.Println("⚠️ Server rejected the session token, session cleared")
}
