// Package foodapi is an HTTP client for the foods, favorites and orders
// collections served by the backend.
package foodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is matched by errors.Is for 404 responses.
var ErrNotFound = errors.New("not found")

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) GetFood(ctx context.Context, id uint) (*Food, error) {
	var food Food
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/foods/%d", id), nil, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *Client) ListFoods(ctx context.Context, q FoodQuery) ([]Food, error) {
	params := url.Values{}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.Category != 0 {
		params.Set("category", strconv.FormatUint(uint64(q.Category), 10))
	}

	var foods []Food
	if err := c.do(ctx, http.MethodGet, "/foods", params, nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// FindFavorites lists favorites whose name equals name.
func (c *Client) FindFavorites(ctx context.Context, name string) ([]Favorite, error) {
	params := url.Values{}
	params.Set("name", name)

	var favorites []Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", params, nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// CreateFavorite marks food as favorite by posting its full record.
func (c *Client) CreateFavorite(ctx context.Context, food Food) (*Favorite, error) {
	var favorite Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites", nil, food, &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (c *Client) DeleteFavorite(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", id), nil, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, dest interface{}) error {
	endpoint := c.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if dest == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
