package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nfdez/brainctl/internal/domain"
	"github.com/nfdez/brainctl/internal/ports"
)

const maxResponseBytes = 1 << 20

// StatusError reports a non-2xx response from the server, keeping the
// status code and the raw body for the operator.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// Client talks to the brain visualization server over plain JSON HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.BrainAPI = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Endpoint returns the absolute URL for a server route, for request
// logging.
func (c *Client) Endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) Activate(ctx context.Context, req domain.ActivationRequest) (domain.ActivateResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return domain.ActivateResult{}, fmt.Errorf("encode activation request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/activate", payload)
	if err != nil {
		return domain.ActivateResult{}, err
	}

	var decoded struct {
		ActiveNodes []string `json:"activeNodes"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.ActivateResult{}, fmt.Errorf("decode activate response: %w", err)
	}

	return domain.ActivateResult{ActiveNodes: decoded.ActiveNodes, Raw: body}, nil
}

func (c *Client) Reset(ctx context.Context) error {
	// Response body is ignored beyond the status code.
	_, err := c.do(ctx, http.MethodPost, "/reset", nil)
	return err
}

func (c *Client) Status(ctx context.Context) (domain.StatusResult, error) {
	body, err := c.do(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return domain.StatusResult{}, err
	}

	var decoded struct {
		ActiveNodes []domain.ActiveEntry `json:"activeNodes"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.StatusResult{}, fmt.Errorf("decode status response: %w", err)
	}

	return domain.StatusResult{ActiveNodes: decoded.ActiveNodes, Raw: body}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.Endpoint(path), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &StatusError{Code: response.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}
