package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResponse(t *testing.T) {
	t.Run("relays the backend text verbatim", func(t *testing.T) {
		var got generateRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/generate", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_ = json.NewEncoder(w).Encode(map[string]string{"response": "Sell it on eBay."})
		}))
		defer server.Close()

		svc := NewAIService(server.URL, "mistral", 5*time.Second)
		text, err := svc.GenerateResponse(context.Background(), "What should I do with this?")
		require.NoError(t, err)
		assert.Equal(t, "Sell it on eBay.", text)

		// The passthrough forwards the prompt untouched and never streams.
		assert.Equal(t, "mistral", got.Model)
		assert.Equal(t, "What should I do with this?", got.Prompt)
		assert.False(t, got.Stream)
	})

	t.Run("unreachable backend wraps ErrUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // Port is now dead

		svc := NewAIService(server.URL, "mistral", time.Second)
		_, err := svc.GenerateResponse(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("non-200 status wraps ErrUnavailable with the backend reason", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer server.Close()

		svc := NewAIService(server.URL, "mistral", time.Second)
		_, err := svc.GenerateResponse(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("malformed backend JSON wraps ErrUnavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		svc := NewAIService(server.URL, "mistral", time.Second)
		_, err := svc.GenerateResponse(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("slow backend times out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		svc := NewAIService(server.URL, "mistral", 50*time.Millisecond)
		_, err := svc.GenerateResponse(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
