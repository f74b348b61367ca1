// Package generation adapts the langchaingo model clients to the
// domain.Generator port.
package generation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"studyaid/internal/config"
	"studyaid/internal/domain"
	"studyaid/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// llmGenerator implements domain.Generator on top of a langchaingo model.
type llmGenerator struct {
	model   llms.Model
	timeout time.Duration
}

// NewLLMGenerator creates a generator for the configured provider.
// Supported providers are "googleai", "openai" and "ollama".
func NewLLMGenerator(cfg config.LLMConfig) (domain.Generator, error) {
	model, err := newModel(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &llmGenerator{model: model, timeout: timeout}, nil
}

func newModel(cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "googleai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("googleai provider requires an API key")
		}
		return googleai.New(context.Background(),
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		)
	case "ollama":
		httpClient := &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     10 * time.Second,
			},
		}
		return ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// Generate sends the compiled request to the model provider and returns
// the raw response text. Any provider-side failure, the timeout included,
// comes back as a GENERATION_FAILED domain error.
func (g *llmGenerator) Generate(ctx context.Context, req domain.CompiledRequest) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	messages := make([]llms.MessageContent, 0, 2)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, req.User))

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			l.Error("LLM request timed out", zap.Duration("timeout", g.timeout))
		} else {
			l.Error("Failed to get response from LLM", zap.Error(err))
		}
		return "", domain.NewGenerationFailedError(err)
	}
	if len(resp.Choices) == 0 {
		l.Error("LLM returned no choices")
		return "", domain.NewGenerationFailedError(fmt.Errorf("empty response from model"))
	}

	return resp.Choices[0].Content, nil
}
