package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tranhn/khtn/internal/store"
)

// NewOrchestrator builds the fallback provider from configuration: one
// provider per candidate model identifier, each wrapped with event logging,
// tried in preferred-first order.
//
// Identifiers prefixed "gpt-" or "claude-" route to the OpenAI or Anthropic
// backend when the matching key is configured; they are skipped otherwise.
// Everything else is served by Gemini.
func NewOrchestrator(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	gemini, err := NewGeminiClient(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	order := CandidateOrder(cfg.PreferredModel, cfg.Models)

	var candidates []Provider
	for _, model := range order {
		var p Provider
		switch VendorFor(model) {
		case "openai":
			if cfg.OpenAIKey == "" {
				continue
			}
			p, err = NewOpenAIProvider(cfg.OpenAIKey, "", model)
		case "anthropic":
			if cfg.AnthropicKey == "" {
				continue
			}
			p, err = NewAnthropicProvider(cfg.AnthropicKey, model)
		default:
			p = NewGeminiProvider(gemini, model)
		}
		if err != nil {
			return nil, fmt.Errorf("initializing provider for %s: %w", model, err)
		}
		candidates = append(candidates, WithLogging(p, eventRepo))
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no usable model candidates in %v", order)
	}

	return NewFallback(candidates...), nil
}

// NewFromSettings resolves configuration from the settings store (with
// environment fallback) and builds the orchestrator.
func NewFromSettings(ctx context.Context, kv store.KV, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := ResolveConfig(kv)
	if err != nil {
		return nil, err
	}
	return NewOrchestrator(ctx, cfg, eventRepo)
}

// VendorFor maps a model identifier to its backing vendor.
func VendorFor(model string) string {
	switch {
	case strings.HasPrefix(model, "gpt-"):
		return "openai"
	case strings.HasPrefix(model, "claude-"):
		return "anthropic"
	default:
		return "gemini"
	}
}
