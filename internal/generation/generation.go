// Package generation calls the external report-generation service
// through an ordered model fallback chain: the primary model is tried
// first and each transient failure moves to the next model. Attempts
// are strictly sequential; there is no speculative fan-out.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/restoreassist/billing/internal/config"
	"github.com/restoreassist/billing/pkg/clients"
	"go.uber.org/zap"
)

var ErrGenerationFailed = errors.New("generation failed")

// PromptPayload is assembled by the caller; prompt text construction is
// not this package's concern.
type PromptPayload struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type Result struct {
	Text      string
	ModelUsed string
}

type generateRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type generateResponse struct {
	Text string `json:"text"`
}

type Service struct {
	url            string
	models         []string
	client         clients.HTTPClientI
	attemptTimeout time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.GenerationAddress,
		models:         cfg.Models(),
		client:         client,
		attemptTimeout: cfg.GenerationTimeout,
	}
}

// Generate tries each model in configured order and returns the first
// successful output. A timeout, transport error, non-200 status, or
// malformed/empty body all count as a failed attempt and advance the
// chain; only exhausting every model is terminal, and the returned
// error carries the last underlying cause.
func (s *Service) Generate(ctx context.Context, payload PromptPayload) (*Result, error) {
	if len(s.models) == 0 {
		return nil, fmt.Errorf("%w: no models configured", ErrGenerationFailed)
	}

	var lastErr error
	for _, model := range s.models {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := s.attempt(ctx, model, payload)
		if err != nil {
			lastErr = err
			zap.L().Warn("model attempt failed, trying next in chain", zap.String("model", model), zap.Error(err))
			continue
		}

		zap.L().Info("generation succeeded", zap.String("model", model))
		return &Result{Text: text, ModelUsed: model}, nil
	}

	return nil, fmt.Errorf("%w: all %d models exhausted: %w", ErrGenerationFailed, len(s.models), lastErr)
}

func (s *Service) attempt(ctx context.Context, model string, payload PromptPayload) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:     model,
		Prompt:    payload.Prompt,
		MaxTokens: payload.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("model %s: failed to marshal request: %w", model, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	statusCode, respBody, _, err := s.client.Post(attemptCtx, s.url+"/api/generate", headers, body)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", model, err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("model %s: unexpected status code %d", model, statusCode)
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("model %s: malformed response body: %w", model, err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", fmt.Errorf("model %s: empty response text", model)
	}

	return resp.Text, nil
}
