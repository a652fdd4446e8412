package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAPIKey indicates no credential could be resolved. It is a
// configuration problem and is surfaced before any request is attempted.
type ErrMissingAPIKey struct {
	// Hint tells the user where to put the key.
	Hint string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Hint != "" {
		return "no API key configured: " + e.Hint
	}
	return "no API key configured"
}

// ErrRateLimit indicates a provider rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not parse
// or does not conform to the requested schema. For fallback purposes it is
// treated identically to a request failure.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the model is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// Attempt records the outcome of one candidate model during fallback.
// Attempt logs are diagnostic only and never persisted.
type Attempt struct {
	Model string
	Err   error
}

// ExhaustedError is returned when every candidate model failed. It carries
// the ordered attempt log and the last observed failure.
type ExhaustedError struct {
	Attempts []Attempt
	Last     error
}

func (e *ExhaustedError) Error() string {
	models := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		models[i] = a.Model
	}
	return fmt.Sprintf("all models failed (%s): %v", strings.Join(models, ", "), e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
