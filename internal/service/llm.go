package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/models"
)

const chatModel = "gpt-4o-mini"

// apologyResponse is returned whenever the completion provider fails. The
// chat surface never shows raw provider errors to the end user.
const apologyResponse = "Sorry, I couldn't process your request. Please try again."

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// LLMService bridges recipe questions to the external completion provider.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewLLMService creates a bridge for the given provider endpoint and key.
func NewLLMService(apiKey, apiURL string, client *http.Client, logger *zap.Logger) *LLMService {
	if client == nil {
		client = http.DefaultClient
	}
	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: client,
		logger: logger,
	}
}

// ChatAboutRecipe answers a free-text question about an assembled recipe.
// It always returns conversational text: any provider fault is logged and
// collapsed into a fixed apology.
func (s *LLMService) ChatAboutRecipe(ctx context.Context, doc *models.AssembledRecipe, userMessage string) string {
	response, err := s.complete(ctx, buildRecipePrompt(doc, userMessage))
	if err != nil {
		s.logger.Error("completion provider call failed",
			zap.Int64("recipe_id", doc.Recipe.RecipeID),
			zap.Error(err))
		return apologyResponse
	}
	return response
}

func buildRecipePrompt(doc *models.AssembledRecipe, userMessage string) string {
	ingredientNames := make([]string, 0, len(doc.Ingredients))
	for _, ing := range doc.Ingredients {
		ingredientNames = append(ingredientNames, ing.Name)
	}

	nutritionParts := make([]string, 0, len(doc.Nutrition))
	for _, n := range doc.Nutrition {
		nutritionParts = append(nutritionParts, fmt.Sprintf("%s: %s %s", n.Name, n.Value, n.Unit))
	}

	return fmt.Sprintf(`You are an AI chef assistant. A user is viewing the recipe %q and has asked a question:

%q

Here are the details of the recipe:
- **Ingredients**: %s
- **Nutritional Info**: %s

Provide **clear, concise** answers. If they ask for modifications, suggest **healthy or meal-prep friendly** options. Only respond about this recipe.`,
		doc.Recipe.Name,
		userMessage,
		strings.Join(ingredientNames, ", "),
		strings.Join(nutritionParts, ", "))
}

func (s *LLMService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: chatModel,
		Messages: []Message{
			{Role: "system", Content: "You are an expert meal-prep AI assistant."},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from provider")
	}

	return result.Choices[0].Message.Content, nil
}
