package service

import (
	"context"
	"fmt"
	"time"

	"career-recommender/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// ModelProviderInterface is the contract the recommendation flow depends on.
// Complete runs a two-message exchange (system persona + user prompt) and
// returns the raw text of the first completion.
type ModelProviderInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Configured() bool
}

type OpenRouterService struct {
	apiKey  string
	model   string
	baseURL string
	client  *resty.Client
}

func NewOpenRouterService(cfg *config.OpenRouterConfig) *OpenRouterService {
	client := resty.New().SetTimeout(60 * time.Second)
	return &OpenRouterService{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  client,
	}
}

func (s *OpenRouterService) Configured() bool {
	return s.apiKey != ""
}

func (s *OpenRouterService) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("openrouter api key not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Title", "Career Recommender App").
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": systemPrompt},
				{"role": "user", "content": userPrompt},
			},
			"temperature": 0.7,
		}).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter api error: %d %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no completion in openrouter response")
	}
	return text, nil
}
