// Package theory serves condensed lesson summaries and interactive
// simulations. Summaries are generated once per grade and lesson and then
// served from the key-value store; there is no expiry, the textbook content
// does not change within a school year.
package theory

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/store"
)

// cacheKeyPrefix versions the cache so a prompt change can invalidate old
// entries by bumping the prefix.
const cacheKeyPrefix = "theory_v1_"

type Service struct {
	backend llm.Provider
	kv      store.KV
}

func NewService(backend llm.Provider, kv store.KV) *Service {
	return &Service{backend: backend, kv: kv}
}

func cacheKey(grade, lessonTitle string) string {
	return cacheKeyPrefix + grade + "_" + lessonTitle
}

// Lesson returns the markdown summary for a lesson, generating and caching it
// on first request. Generation failures are returned as errors and never
// cached, so the next request retries.
func (s *Service) Lesson(ctx context.Context, lessonTitle, grade string) (string, error) {
	key := cacheKey(grade, lessonTitle)
	if cached, err := s.kv.GetString(key); err == nil && cached != "" {
		return cached, nil
	}

	ctx = llm.WithPurpose(ctx, "theory")
	resp, err := s.backend.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTheoryPrompt(lessonTitle, grade)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}

	content := resp.Text()
	if strings.TrimSpace(content) == "" {
		return "", &llm.ErrInvalidResponse{Err: fmt.Errorf("empty theory content")}
	}

	if err := s.kv.SetString(key, content); err != nil {
		return content, fmt.Errorf("cache theory: %w", err)
	}
	return content, nil
}

// Simulation generates a self-contained HTML page visualizing the lesson and
// writes it to a temp file the caller can open in a browser. userRequest
// narrows the focus; empty means "the lesson's core concept".
func (s *Service) Simulation(ctx context.Context, lessonTitle, userRequest string) (string, error) {
	ctx = llm.WithPurpose(ctx, "simulation")
	resp, err := s.backend.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSimulationPrompt(lessonTitle, userRequest)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	code := stripFences(resp.Text())
	if code == "" {
		return "", &llm.ErrInvalidResponse{Err: fmt.Errorf("empty simulation output")}
	}

	f, err := os.CreateTemp("", "khtn-sim-*.html")
	if err != nil {
		return "", fmt.Errorf("create simulation file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(code); err != nil {
		return "", fmt.Errorf("write simulation file: %w", err)
	}
	return f.Name(), nil
}

// stripFences removes markdown code fences the model wraps around HTML
// despite being told not to.
func stripFences(code string) string {
	code = strings.ReplaceAll(code, "```html", "")
	code = strings.ReplaceAll(code, "```", "")
	return strings.TrimSpace(code)
}
