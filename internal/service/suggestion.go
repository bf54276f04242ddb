package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSuggestionUnavailable signals that the suggestion endpoint could not
// be reached or rejected the request. Callers still receive usable fallback
// text; the error exists only so the UI layer can surface a notification.
var ErrSuggestionUnavailable = errors.New("suggestion service unavailable")

const (
	fallbackSuggestionText = "Sorry, there was an error getting recipe suggestions. Please try again later."
	emptySuggestionText    = "Sorry, I couldn't generate any recipe suggestions."

	suggestionCacheTTL = time.Hour
)

// SuggestionService forwards free-text prompts to a generative text
// endpoint and returns the raw reply. Replies are optionally cached in
// Redis keyed by prompt hash.
type SuggestionService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// NewSuggestionService reads the API key from SUGGESTION_API_KEY or
// SUGGESTION_API_KEY_FILE. redisClient may be nil to disable the reply
// cache.
func NewSuggestionService(redisClient *redis.Client) (*SuggestionService, error) {
	apiKey := os.Getenv("SUGGESTION_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("SUGGESTION_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("SUGGESTION_API_KEY or SUGGESTION_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("SUGGESTION_API_URL")
	if apiURL == "" {
		apiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"
	}

	return &SuggestionService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
		redis:  redisClient,
	}, nil
}

// generateRequest is the endpoint's wire format.
type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		TopK            int     `json:"topK"`
		TopP            float64 `json:"topP"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

// Suggest returns the reply text for the given prompt. On any transport or
// remote-side failure it returns fallback text together with
// ErrSuggestionUnavailable; it never propagates the underlying error.
func (s *SuggestionService) Suggest(ctx context.Context, prompt string) (string, error) {
	cacheKey := suggestionCacheKey(prompt)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	text, err := s.call(ctx, prompt)
	if err != nil {
		log.Printf("suggestion request failed: %v", err)
		return fallbackSuggestionText, ErrSuggestionUnavailable
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, text, suggestionCacheTTL).Err(); err != nil {
			log.Printf("caching suggestion reply: %v", err)
		}
	}
	return text, nil
}

func (s *SuggestionService) call(ctx context.Context, prompt string) (string, error) {
	var reqBody generateRequest
	reqBody.Contents = make([]struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	reqBody.Contents[0].Parts = []struct {
		Text string `json:"text"`
	}{{Text: fmt.Sprintf(`Generate recipe suggestions based on this request: %q.
Please format your response as conversational text, but also include structured recipe information if applicable.
For each recipe, include title, description, ingredients (as a list), instructions (as numbered steps), prep time, cook time, and number of servings.`, prompt)}}
	reqBody.GenerationConfig.Temperature = 0.7
	reqBody.GenerationConfig.TopK = 40
	reqBody.GenerationConfig.TopP = 0.95
	reqBody.GenerationConfig.MaxOutputTokens = 1200

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("API error: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("API error: %s", resp.Status)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 || result.Candidates[0].Content.Parts[0].Text == "" {
		return emptySuggestionText, nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func suggestionCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "suggestion:" + hex.EncodeToString(sum[:])
}
