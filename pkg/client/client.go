// Package client is a typed HTTP client for the contacts and to-do API. It
// shares the server's request and response models, applies the same
// validation rules before touching the wire, and translates error bodies
// back into the domain error taxonomy.
package client

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

	"tdm/internal/core/domain"
	"tdm/internal/core/model/response"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	Contacts  *ContactsClient
	TodoItems *TodoItemsClient
	Users     *UsersClient
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Contacts = &ContactsClient{c: c}
	c.TodoItems = &TodoItemsClient{c: c}
	c.Users = &UsersClient{c: c}

	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)

		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)

	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, out)
}

// decodeError rebuilds the domain error the server translated away: a JSON
// array is a validation failure, an object carries a single message keyed by
// status.
func decodeError(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var failures []response.ValidationFailure

		if err := json.Unmarshal(trimmed, &failures); err == nil {
			violations := make([]domain.FieldViolation, 0, len(failures))

			for _, f := range failures {
				violations = append(violations, domain.FieldViolation{
					PropertyName: f.PropertyName,
					ErrorMessage: f.ErrorMessage,
				})
			}

			return domain.NewValidationError(violations...)
		}
	}

	var errResp response.ErrorResponse

	message := string(trimmed)

	if err := json.Unmarshal(trimmed, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	switch status {
	case http.StatusBadRequest:
		return &domain.BadRequestError{Message: message}
	case http.StatusNotFound:
		return &domain.NotFoundError{Message: message}
	case http.StatusConflict:
		return &domain.ConflictError{Message: message}
	default:
		return fmt.Errorf("unexpected status %d: %s", status, message)
	}
}
