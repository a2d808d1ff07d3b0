package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// SupabaseClient reads whole tables from the remote reference-data store,
// which exposes a PostgREST-style API.
type SupabaseClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewSupabaseClient creates a client for the given store URL and key.
func NewSupabaseClient(baseURL, apiKey string, client *http.Client, logger *zap.Logger) *SupabaseClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &SupabaseClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		logger:  logger,
	}
}

// FetchTable retrieves every row of a table and decodes the JSON array into
// dest, which must be a pointer to a slice.
func (c *SupabaseClient) FetchTable(ctx context.Context, table string, dest interface{}) error {
	url := fmt.Sprintf("%s/rest/v1/%s?select=*", c.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for table %s: %w", table, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch table %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("reference store returned error",
			zap.String("table", table),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("reference store returned status %d for table %s", resp.StatusCode, table)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("failed to decode table %s: %w", table, err)
	}

	c.logger.Debug("fetched table", zap.String("table", table))
	return nil
}
