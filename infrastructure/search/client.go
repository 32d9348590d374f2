package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"libreria-backend/application/ports"
	"libreria-backend/domain/catalog"
	pkgerrors "libreria-backend/pkg/errors"
)

// Client implements ports.SearchEngine against the engine's HTTP proxy.
// The engine itself (indexing, scoring) is an external collaborator; this
// client only ships the request payload and maps the response.
type Client struct {
	httpClient *http.Client
	endpoint   string
	index      string
	logger     *zap.Logger
}

// NewClient creates a new search engine client
func NewClient(endpoint, index string, logger *zap.Logger) ports.SearchEngine {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		index:      index,
		logger:     logger,
	}
}

// Search executes a term search against the engine
func (c *Client) Search(ctx context.Context, term string, from, size int) ([]catalog.ProductFromSearch, error) {
	payload := NewProductSearchRequest(c.index, term, from, size)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.NewInternalError("search engine unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.NewInternalError(
			fmt.Sprintf("search engine returned status %d", resp.StatusCode), nil)
	}

	var engineResp Response
	if err := json.NewDecoder(resp.Body).Decode(&engineResp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return engineResp.Products(), nil
}
