/*
Copyright © 2026 masteryyh <yyh991013@163.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package remote

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	json "github.com/bytedance/sonic"
	"github.com/masteryyh/promoadmin/pkg/config"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
)

const retryDelay = 200 * time.Millisecond

// Client talks JSON to one of the remote services behind the admin app.
type Client struct {
	baseURL    string
	token      string
	retries    uint
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration, retries uint) *Client {
	if retries == 0 {
		retries = 1
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		retries: retries,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func NewClientFromConfig(cfg *config.UpstreamConfig) *Client {
	return NewClient(cfg.BaseURL, cfg.Token, cfg.Timeout, cfg.Retries)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError is a non-2xx answer from the remote service.
type StatusError struct {
	Method string
	URL    string
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.Status)
}

// Get is retried on transport errors and 5xx answers.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	attempts := uint(1)
	if method == http.MethodGet {
		attempts = c.retries
	}

	respBody, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.send(ctx, method, target, payload)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			slog.WarnContext(ctx, "upstream request attempt failed", "method", method, "url", target, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return toBusinessError(err)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response of %s %s: %w", method, target, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, target string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{Method: method, URL: target, Status: resp.StatusCode, Body: respBody}
	}
	return respBody, nil
}

func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status >= http.StatusInternalServerError
	}
	return true
}

func toBusinessError(err error) error {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", customerrors.ErrUpstreamUnavailable, err)
	}

	switch statusErr.Status {
	case http.StatusNotFound:
		return customerrors.ErrNotFound
	case http.StatusUnauthorized:
		return customerrors.ErrUnauthorized
	case http.StatusForbidden:
		return customerrors.ErrForbidden
	case http.StatusBadRequest:
		return customerrors.ErrInvalidParams
	case http.StatusNotAcceptable:
		return customerrors.ErrUpstreamRejected.WithDetails(parseFieldErrors(statusErr.Body))
	default:
		return fmt.Errorf("%w: %w", customerrors.ErrUpstreamUnavailable, statusErr)
	}
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// parseFieldErrors reads a validation answer. The services send "errors" either
// as an array of {field, message} or as that array encoded in a string.
func parseFieldErrors(body []byte) map[string]string {
	var envelope struct {
		Errors stdjson.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return nil
	}

	raw := []byte(envelope.Errors)
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = []byte(encoded)
	}

	var fields []fieldError
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	details := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Field == "" {
			continue
		}
		details[f.Field] = f.Message
	}
	return details
}
