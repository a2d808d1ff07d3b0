package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/types"
)

// placeholderAPIKey is the template value shipped in example env files. A
// key equal to it is treated the same as no key at all.
const placeholderAPIKey = "your-default-api-key"

// InstacartService turns ingredient lists into shareable shopping-list URLs
// via the external grocery provider.
type InstacartService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewInstacartService creates a bridge for the given provider base URL and
// key.
func NewInstacartService(apiKey, baseURL string, client *http.Client, logger *zap.Logger) *InstacartService {
	if client == nil {
		client = http.DefaultClient
	}
	return &InstacartService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

type shoppingListItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type shoppingListPayload struct {
	Items []shoppingListItem `json:"items"`
}

// GetShoppingList generates a shopping-list link for the given ingredients.
// Authorization failures, generic provider failures and malformed responses
// are logged distinctly but all surface to the caller as an error; the
// distinction is diagnostic only.
func (s *InstacartService) GetShoppingList(ctx context.Context, ingredients []types.IngredientInput) (string, error) {
	if s.apiKey == "" || s.apiKey == placeholderAPIKey {
		s.logger.Warn("shopping-list provider key missing or placeholder; skipping provider call")
		return "", ErrNotConfigured
	}

	payload := shoppingListPayload{Items: make([]shoppingListItem, 0, len(ingredients))}
	for _, ing := range ingredients {
		quantity := ing.Amount
		if quantity == 0 {
			quantity = 1
		}
		payload.Items = append(payload.Items, shoppingListItem{Name: ing.Name, Quantity: quantity})
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal shopping list payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/shopping_list", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("shopping-list provider unreachable", zap.Error(err))
		return "", fmt.Errorf("failed to call shopping-list provider: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		s.logger.Error("shopping-list provider rejected API key", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("shopping-list provider: invalid API key")
	case http.StatusForbidden:
		s.logger.Error("shopping-list provider denied access", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("shopping-list provider: access denied")
	default:
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("shopping-list provider returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", fmt.Errorf("shopping-list provider returned status %d", resp.StatusCode)
	}

	var result struct {
		ShoppingListURL string `json:"shopping_list_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}
	if result.ShoppingListURL == "" {
		s.logger.Error("shopping-list provider response missing shopping_list_url")
		return "", fmt.Errorf("shopping-list provider response missing URL")
	}

	return result.ShoppingListURL, nil
}
