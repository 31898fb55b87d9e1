// Package client talks to the seat reservation HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/train-seat-reservation/api"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Book(ctx context.Context, count int) (api.Booking, error) {
	var resp api.BookingResponse

	err := c.do(ctx, http.MethodPost, "/v1/bookings", api.BookSeatsRequest{Count: &count}, &resp)
	if err != nil {
		return api.Booking{}, err
	}

	return resp.Booking, nil
}

func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/v1/bookings", nil, nil)
}

func (c *Client) SeatMap(ctx context.Context) (api.SeatMapResponse, error) {
	var resp api.SeatMapResponse

	err := c.do(ctx, http.MethodGet, "/v1/seats", nil, &resp)

	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
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
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return decodeError(res)
	}

	if dst == nil {
		return nil
	}

	err = json.NewDecoder(res.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func decodeError(res *http.Response) error {
	var errResp api.ValidationErrorResponse

	err := json.NewDecoder(res.Body).Decode(&errResp)
	if err != nil || errResp.Message == "" {
		return &APIError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
	}

	message := errResp.Message

	if len(errResp.ValidationErrors) > 0 {
		issues := make([]string, len(errResp.ValidationErrors))
		for i, v := range errResp.ValidationErrors {
			issues[i] = v.Field + " " + v.Issue
		}
		message += ": " + strings.Join(issues, "; ")
	}

	return &APIError{StatusCode: res.StatusCode, Message: message}
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
