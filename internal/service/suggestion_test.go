package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-realm/backend/internal/service"
)

func newSuggestionService(t *testing.T, apiURL string) *service.SuggestionService {
	t.Helper()
	t.Setenv("SUGGESTION_API_KEY", "test-key")
	t.Setenv("SUGGESTION_API_KEY_FILE", "")
	t.Setenv("SUGGESTION_API_URL", apiURL)

	svc, err := service.NewSuggestionService(nil)
	require.NoError(t, err)
	return svc
}

func suggestionReply(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	}
}

func TestSuggestReturnsReplyText(t *testing.T) {
	var gotKey string
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig struct {
			Temperature     float64 `json:"temperature"`
			MaxOutputTokens int     `json:"maxOutputTokens"`
		} `json:"generationConfig"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(suggestionReply("Try a mushroom risotto."))
	}))
	defer server.Close()

	svc := newSuggestionService(t, server.URL)

	text, err := svc.Suggest(context.Background(), "something with mushrooms")
	require.NoError(t, err)
	assert.Equal(t, "Try a mushroom risotto.", text)

	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "something with mushrooms")
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 1200, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestSuggestFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "quota exceeded"},
		})
	}))
	defer server.Close()

	svc := newSuggestionService(t, server.URL)

	text, err := svc.Suggest(context.Background(), "anything")
	assert.ErrorIs(t, err, service.ErrSuggestionUnavailable)
	assert.Equal(t, "Sorry, there was an error getting recipe suggestions. Please try again later.", text)
}

func TestSuggestFallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := newSuggestionService(t, server.URL)

	text, err := svc.Suggest(context.Background(), "anything")
	assert.ErrorIs(t, err, service.ErrSuggestionUnavailable)
	assert.NotEmpty(t, text)
}

func TestSuggestEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer server.Close()

	svc := newSuggestionService(t, server.URL)

	text, err := svc.Suggest(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't generate any recipe suggestions.", text)
}

func TestNewSuggestionServiceRequiresKey(t *testing.T) {
	t.Setenv("SUGGESTION_API_KEY", "")
	t.Setenv("SUGGESTION_API_KEY_FILE", "")

	_, err := service.NewSuggestionService(nil)
	assert.Error(t, err)
}

func TestNewSuggestionServiceReadsKeyFile(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "api_key")
	require.NoError(t, os.WriteFile(keyPath, []byte("file-key\n"), 0o600))

	t.Setenv("SUGGESTION_API_KEY", "")
	t.Setenv("SUGGESTION_API_KEY_FILE", keyPath)
	t.Setenv("SUGGESTION_API_URL", "http://localhost:1")

	_, err := service.NewSuggestionService(nil)
	assert.NoError(t, err)
}
