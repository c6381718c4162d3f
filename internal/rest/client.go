// Package rest issues single HTTP calls against the HealthMate backend and
// normalizes every outcome into a decoded value or a *rest.Error. It is the
// only place the transport is touched; the state slices never see an
// http.Response.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	collector  *metrics
}

type Option func(*Client)

// WithHTTPClient replaces the default transport (15s timeout).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// WithRateLimit caps outbound request rate; every call waits for a token
// before the request is issued.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(client *Client) {
		client.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithMetrics registers request counters and a latency histogram on the
// given registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(client *Client) {
		client.collector = newMetrics(registerer)
	}
}

func NewClient(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Get issues a GET and decodes the response body into T.
func Get[T any](ctx context.Context, client *Client, path string, query url.Values) (T, error) {
	return do[T](ctx, client, http.MethodGet, path, query, nil)
}

// Post sends body as JSON and decodes the response into T.
func Post[B any, T any](ctx context.Context, client *Client, path string, body B) (T, error) {
	return do[T](ctx, client, http.MethodPost, path, nil, body)
}

// Put sends body as JSON and decodes the response into T.
func Put[B any, T any](ctx context.Context, client *Client, path string, body B) (T, error) {
	return do[T](ctx, client, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE and discards any response body.
func Delete(ctx context.Context, client *Client, path string) error {
	_, err := do[struct{}](ctx, client, http.MethodDelete, path, nil, nil)
	return err
}

func do[T any](ctx context.Context, client *Client, method string, path string, query url.Values, body any) (T, error) {
	var result T

	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			return result, &Error{Message: err.Error()}
		}
	}

	var requestBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return result, &Error{Message: fmt.Sprintf("encode request body: %v", err)}
		}
		requestBody = bytes.NewReader(encoded)
	}

	target := client.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, target, requestBody)
	if err != nil {
		return result, &Error{Message: err.Error()}
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.collector.observe(method, 0, time.Since(started))
		return result, &Error{Message: err.Error()}
	}
	defer response.Body.Close()

	payload, readErr := io.ReadAll(response.Body)
	client.collector.observe(method, response.StatusCode, time.Since(started))
	if readErr != nil {
		return result, &Error{StatusCode: response.StatusCode, Message: readErr.Error()}
	}

	if response.StatusCode >= http.StatusBadRequest {
		return result, &Error{
			StatusCode: response.StatusCode,
			Message:    extractErrorMessage(response.StatusCode, payload),
		}
	}

	if response.StatusCode == http.StatusNoContent || len(payload) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(payload, &result); err != nil {
		return result, &Error{
			StatusCode: response.StatusCode,
			Message:    fmt.Sprintf("decode response: %v", err),
		}
	}
	return result, nil
}

func extractErrorMessage(statusCode int, payload []byte) string {
	parsed := struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}{}
	if err := json.Unmarshal(payload, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "request failed"
}
