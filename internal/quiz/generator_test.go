package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tranhn/khtn/internal/llm"
)

func questionsJSON(t *testing.T, qs []Question) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(qs)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestGenerator_ValidSet(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{
		Content: questionsJSON(t, sampleQuestions(15)),
	})
	g := NewGenerator(mock)

	qs, err := g.Generate(context.Background(), "Nguyên tử", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(qs))
	}
	if qs[0].Difficulty != Recall {
		t.Fatalf("unexpected difficulty: %s", qs[0].Difficulty)
	}
}

func TestGenerator_WrongCount(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{
		Content: questionsJSON(t, sampleQuestions(14)),
	})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "Nguyên tử", "7")
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerator_AnswerNotInOptions(t *testing.T) {
	qs := sampleQuestions(15)
	qs[3].CorrectAnswer = "E"
	mock := llm.NewNamedMock("m", llm.MockResponse{Content: questionsJSON(t, qs)})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "Nguyên tử", "7")
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerator_CaseFoldedOptionMatch(t *testing.T) {
	qs := sampleQuestions(15)
	qs[0].Options = []string{"Đúng rồi", "B", "C", "D"}
	qs[0].CorrectAnswer = "đúng rồi "
	mock := llm.NewNamedMock("m", llm.MockResponse{Content: questionsJSON(t, qs)})
	g := NewGenerator(mock)

	if _, err := g.Generate(context.Background(), "Nguyên tử", "7"); err != nil {
		t.Fatalf("case-folded answer should validate, got %v", err)
	}
}

func TestGenerator_SemanticFailureFallsBack(t *testing.T) {
	bad := sampleQuestions(15)
	bad[0].CorrectAnswer = "E" // schema-valid, but not among the options
	a := llm.NewNamedMock("a", llm.MockResponse{Content: questionsJSON(t, bad)})
	b := llm.NewNamedMock("b", llm.MockResponse{Content: questionsJSON(t, sampleQuestions(15))})
	g := NewGenerator(llm.NewFallback(a, b))

	qs, err := g.Generate(context.Background(), "Nguyên tử", "7")
	if err != nil {
		t.Fatalf("expected fallback to recover, got %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(qs))
	}
	if a.CallCount() != 1 || b.CallCount() != 1 {
		t.Fatalf("expected one attempt per candidate, got a=%d b=%d", a.CallCount(), b.CallCount())
	}
}

func TestGenerator_BackendError(t *testing.T) {
	mock := llm.NewNamedMock("m", llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("503")},
	})
	g := NewGenerator(mock)

	if _, err := g.Generate(context.Background(), "Nguyên tử", "7"); err == nil {
		t.Fatal("expected error from backend")
	}
}
