package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKV_RoundTrip(t *testing.T) {
	kv := openTestStore(t).KV()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := kv.Set("profile", payload{Name: "Minh Anh", Count: 3}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	ok, err := kv.Get("profile", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if got.Name != "Minh Anh" || got.Count != 3 {
		t.Fatalf("unexpected value: %+v", got)
	}
}

func TestKV_MissingKey(t *testing.T) {
	kv := openTestStore(t).KV()

	var dest map[string]any
	ok, err := kv.Get("nope", &dest)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected key to be absent")
	}
}

func TestKV_Overwrite(t *testing.T) {
	kv := openTestStore(t).KV()

	if err := kv.SetString("theory_v1_8_Áp suất", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.SetString("theory_v1_8_Áp suất", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := kv.GetString("theory_v1_8_Áp suất")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "second" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 900,
		LatencyMs:    1500,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "quiz-gen" || !events[0].Success {
		t.Fatalf("unexpected event: %+v", events[0])
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 || usage[0].Calls != 1 || usage[0].OutputTokens != 900 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
}

func TestEventRepo_UsageByModel(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "quiz", InputTokens: 100, OutputTokens: 400, Success: true},
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "theory", InputTokens: 50, OutputTokens: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", InputTokens: 10, OutputTokens: 20, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 models, got %d", len(usage))
	}
	// Ordered by model name.
	if usage[0].Model != "gemini-2.5-flash" || usage[0].Calls != 1 {
		t.Fatalf("unexpected first row: %+v", usage[0])
	}
	if usage[1].Model != "gemini-3-flash-preview" || usage[1].Calls != 2 || usage[1].InputTokens != 150 || usage[1].OutputTokens != 600 {
		t.Fatalf("unexpected second row: %+v", usage[1])
	}
}

func TestStore_Reset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.KV().SetString("userProfile", "{}"); err != nil {
		t.Fatalf("set: %v", err)
	}
	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "chat", Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := s.KV().GetString("userProfile")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Fatal("expected kv to be empty after reset")
	}
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events after reset, got %d", len(events))
	}
}
