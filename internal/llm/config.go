package llm

import (
	"os"

	"github.com/tranhn/khtn/internal/store"
)

// Settings keys shared with the settings screen. The names predate this
// implementation and are kept for data compatibility.
const (
	SettingAPIKey         = "GEMINI_API_KEY"
	SettingPreferredModel = "GEMINI_MODEL"
)

// DefaultModel is used when the learner has not picked a model.
const DefaultModel = "gemini-3-flash-preview"

// AvailableModels is the fixed set of known model identifiers, in fallback
// order. The preferred model is moved to the front at request time.
var AvailableModels = []string{
	"gemini-3-flash-preview",
	"gemini-3-pro-preview",
	"gemini-2.5-flash",
}

// Config holds resolved orchestrator configuration.
type Config struct {
	// APIKey is the Gemini credential. Required.
	APIKey string

	// PreferredModel goes first in the candidate order.
	PreferredModel string

	// Models is the full identifier set considered for fallback.
	Models []string

	// OpenAIKey and AnthropicKey optionally enable extra backends; model
	// identifiers prefixed "gpt-" or "claude-" route to them.
	OpenAIKey    string
	AnthropicKey string
}

// ResolveConfig builds a Config from the settings store with environment
// fallback. The learner's key takes priority over the environment key.
// Returns *ErrMissingAPIKey when no credential can be found.
func ResolveConfig(kv store.KV) (Config, error) {
	cfg := Config{
		PreferredModel: DefaultModel,
		Models:         AvailableModels,
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
	}

	if kv != nil {
		if k, err := kv.GetString(SettingAPIKey); err == nil && k != "" {
			cfg.APIKey = k
		}
		if m, err := kv.GetString(SettingPreferredModel); err == nil && m != "" {
			cfg.PreferredModel = m
		}
	}

	if cfg.APIKey == "" {
		if k := os.Getenv("KHTN_GEMINI_API_KEY"); k != "" {
			cfg.APIKey = k
		} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			cfg.APIKey = k
		}
	}

	if cfg.APIKey == "" {
		return Config{}, &ErrMissingAPIKey{
			Hint: "Vui lòng nhập API Key trong phần Cài đặt (khtn settings), hoặc đặt biến môi trường GEMINI_API_KEY.",
		}
	}

	return cfg, nil
}
