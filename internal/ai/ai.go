package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable marks every failure of the generation backend, so handlers
// can map it to a dedicated service-unavailable outcome instead of a generic
// server error.
var ErrUnavailable = errors.New("generation service unavailable")

// AIService is a thin client for a local Ollama-compatible generation
// service. Prompts are forwarded verbatim and the response text is relayed
// back unchanged.
type AIService struct {
	BaseURL string
	Model   string
	client  *http.Client
}

// NewAIService builds the client. The timeout bounds the whole generation
// call; the backend is the only genuinely blocking external dependency.
func NewAIService(baseURL, model string, timeout time.Duration) *AIService {
	return &AIService{
		BaseURL: baseURL,
		Model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// GenerateResponse forwards the prompt to the backend and returns its text.
// Every failure path wraps ErrUnavailable.
func (s *AIService) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  s.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		// Read a little of the body so the error carries the backend's reason.
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, res.StatusCode, detail)
	}

	var out generateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return out.Response, nil
}
