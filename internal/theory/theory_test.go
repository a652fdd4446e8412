package theory

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/store"
)

func TestLesson_CachesOnFirstRequest(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{
		Content: json.RawMessage("**Tốc độ**: $v = s/t$"),
	})
	kv := store.NewMemKV()
	s := NewService(mock, kv)

	content, err := s.Lesson(context.Background(), "Tốc độ chuyển động", "7")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "Tốc độ") {
		t.Fatalf("unexpected content: %q", content)
	}

	// Second request must come from the cache, no backend call.
	again, err := s.Lesson(context.Background(), "Tốc độ chuyển động", "7")
	if err != nil {
		t.Fatal(err)
	}
	if again != content {
		t.Fatal("cached content should be identical")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 backend call, got %d", mock.CallCount())
	}
}

func TestLesson_CacheKeyedByGradeAndLesson(t *testing.T) {
	mock := llm.NewNamedMock("m",
		llm.MockResponse{Content: json.RawMessage("lớp 6")},
		llm.MockResponse{Content: json.RawMessage("lớp 7")},
	)
	s := NewService(mock, store.NewMemKV())

	a, _ := s.Lesson(context.Background(), "Nguyên tử", "6")
	b, _ := s.Lesson(context.Background(), "Nguyên tử", "7")
	if a == b {
		t.Fatal("different grades must not share cache entries")
	}
}

func TestLesson_ErrorsAreNotCached(t *testing.T) {
	mock := llm.NewNamedMock("m",
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}},
		llm.MockResponse{Content: json.RawMessage("nội dung")},
	)
	kv := store.NewMemKV()
	s := NewService(mock, kv)

	if _, err := s.Lesson(context.Background(), "Nam châm", "7"); err == nil {
		t.Fatal("expected error on first attempt")
	}

	// Retry succeeds and serves fresh content, not a cached error string.
	content, err := s.Lesson(context.Background(), "Nam châm", "7")
	if err != nil {
		t.Fatal(err)
	}
	if content != "nội dung" {
		t.Fatalf("unexpected content after retry: %q", content)
	}
}

func TestSimulation_StripsFencesAndWritesFile(t *testing.T) {
	html := "```html\n<!DOCTYPE html><html><body>sim</body></html>\n```"
	mock := llm.NewNamedMock("m", llm.MockResponse{Content: json.RawMessage(html)})
	s := NewService(mock, store.NewMemKV())

	path, err := s.Simulation(context.Background(), "Áp suất", "slider cột nước")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(path) })

	if !strings.HasSuffix(path, ".html") {
		t.Fatalf("expected .html file, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if strings.Contains(got, "```") {
		t.Fatalf("fences not stripped: %q", got)
	}
	if !strings.Contains(got, "<!DOCTYPE html>") {
		t.Fatalf("unexpected file content: %q", got)
	}
}
