package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/gardens/internal/entities"
)

const (
	// DevAPIBaseURL is the API address used when the page is served locally.
	DevAPIBaseURL = "http://localhost:3000"

	gardensPath    = "/api/v1/gardens"
	defaultTimeout = 30 * time.Second
)

// Client calls the gardens REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: defaultTimeout})
}

// NewClientWithHTTP creates a client that sends requests through httpClient.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ResolveBaseURL derives the API base URL from the origin the frontend was
// loaded from: local hosts talk to DevAPIBaseURL, anything else to the
// origin itself.
func ResolveBaseURL(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("failed to parse origin: %w", err)
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1":
		return DevAPIBaseURL, nil
	case "":
		return "", fmt.Errorf("%w: %q", ErrNoHost, origin)
	}
	return u.Scheme + "://" + u.Host, nil
}

// GardensURL returns the collection endpoint.
func (c *Client) GardensURL() string {
	return c.baseURL + gardensPath
}

func (c *Client) gardenURL(id uint) string {
	return c.GardensURL() + "/" + strconv.FormatUint(uint64(id), 10)
}

// DeleteResult is the body of a successful delete.
type DeleteResult struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

// List fetches every garden.
func (c *Client) List(ctx context.Context) ([]entities.Garden, error) {
	var gardens []entities.Garden
	if err := c.do(ctx, http.MethodGet, c.GardensURL(), nil, &gardens); err != nil {
		return nil, err
	}
	return gardens, nil
}

// Create adds a garden and returns the stored row.
func (c *Client) Create(ctx context.Context, in entities.GardenInput) (*entities.Garden, error) {
	var garden entities.Garden
	if err := c.do(ctx, http.MethodPost, c.GardensURL(), in, &garden); err != nil {
		return nil, err
	}
	return &garden, nil
}

// Update replaces every field of garden id.
func (c *Client) Update(ctx context.Context, id uint, in entities.GardenInput) (*entities.Garden, error) {
	var garden entities.Garden
	if err := c.do(ctx, http.MethodPut, c.gardenURL(id), in, &garden); err != nil {
		return nil, err
	}
	return &garden, nil
}

// Delete removes garden id.
func (c *Client) Delete(ctx context.Context, id uint) (*DeleteResult, error) {
	var result DeleteResult
	if err := c.do(ctx, http.MethodDelete, c.gardenURL(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		apiErr := newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), string(text))
		zap.S().Errorw("API error",
			"method", method,
			"url", endpoint,
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
