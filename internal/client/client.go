// Package client is a small HTTP client for the production API, used by
// kettlectl.
package client

import (
	request "bitumen_production/internal/adapter/http/dto/request"
	response "bitumen_production/internal/adapter/http/dto/response"
	"bitumen_production/pkg"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a non-2xx answer carrying the server's error envelope.
type APIError struct {
	StatusCode int
	Body       pkg.HTTPError
}

func (e *APIError) Error() string {
	if e.Body.Code == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Body.Code, e.Body.Message)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Body.Code == code
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Status(ctx context.Context) (response.ProcessStatusResponse, error) {
	var out response.ProcessStatusResponse
	err := c.do(ctx, http.MethodGet, "/v1/conversion/active", nil, &out)
	return out, err
}

func (c *Client) Start(ctx context.Context, in request.ConversionInputsRequest) (response.StartConversionResponse, error) {
	var out response.StartConversionResponse
	err := c.do(ctx, http.MethodPost, "/v1/conversion/start", in, &out)
	return out, err
}

func (c *Client) Finish(ctx context.Context, in request.FinishConversionRequest) (response.FinishConversionResponse, error) {
	var out response.FinishConversionResponse
	err := c.do(ctx, http.MethodPost, "/v1/conversion/finish", in, &out)
	return out, err
}

func (c *Client) ListStock(ctx context.Context) ([]response.StockResponse, error) {
	var out []response.StockResponse
	err := c.do(ctx, http.MethodGet, "/v1/stock", nil, &out)
	return out, err
}

func (c *Client) GetStock(ctx context.Context, category string) (response.StockResponse, error) {
	var out response.StockResponse
	err := c.do(ctx, http.MethodGet, "/v1/stock/"+url.PathEscape(category), nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, &apiErr.Body)
		return apiErr
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
