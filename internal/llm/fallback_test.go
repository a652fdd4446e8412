package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func failing(model string) *MockProvider {
	return NewNamedMock(model, MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
}

func succeeding(model, content string) *MockProvider {
	return NewNamedMock(model, MockResponse{Content: json.RawMessage(content)})
}

func TestCandidateOrder_PreferredFirst(t *testing.T) {
	available := []string{"a", "b", "c"}

	order := CandidateOrder("b", available)
	want := []string{"b", "a", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestCandidateOrder_NoDuplicates(t *testing.T) {
	order := CandidateOrder("a", []string{"a", "b", "c"})
	if len(order) != 3 {
		t.Fatalf("expected 3 candidates, got %v", order)
	}
	seen := map[string]bool{}
	for _, m := range order {
		if seen[m] {
			t.Fatalf("duplicate candidate %q in %v", m, order)
		}
		seen[m] = true
	}
}

func TestFallback_FirstCandidateSucceeds(t *testing.T) {
	a := succeeding("a", `"hello"`)
	b := succeeding("b", `"never"`)
	f := NewFallback(a, b)

	resp, err := f.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"hello"` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if b.CallCount() != 0 {
		t.Fatal("second candidate should not be tried after a success")
	}
}

func TestFallback_SecondCandidateSucceeds(t *testing.T) {
	a := failing("a")
	b := succeeding("b", `"from b"`)
	f := NewFallback(a, b)

	resp, err := f.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"from b"` {
		t.Fatalf("expected b's output, got: %s", resp.Content)
	}
	if a.CallCount() != 1 || b.CallCount() != 1 {
		t.Fatalf("expected exactly 2 attempts, got %d + %d", a.CallCount(), b.CallCount())
	}
}

func TestFallback_SuccessAtPositionK(t *testing.T) {
	for k := 0; k < 4; k++ {
		var candidates []Provider
		var mocks []*MockProvider
		for i := 0; i < 4; i++ {
			var m *MockProvider
			if i == k {
				m = succeeding("m", `"ok"`)
			} else {
				m = failing("m")
			}
			mocks = append(mocks, m)
			candidates = append(candidates, m)
		}

		f := NewFallback(candidates...)
		if _, err := f.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}

		attempts := 0
		for _, m := range mocks {
			attempts += m.CallCount()
		}
		if attempts != k+1 {
			t.Fatalf("k=%d: expected %d attempts, got %d", k, k+1, attempts)
		}
	}
}

func TestFallback_AllCandidatesFail(t *testing.T) {
	f := NewFallback(failing("a"), failing("b"), failing("c"))

	_, err := f.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ExhaustedError, got %T", err)
	}
	if len(exhausted.Attempts) != 3 {
		t.Fatalf("expected 3 logged attempts, got %d", len(exhausted.Attempts))
	}
	if exhausted.Attempts[0].Model != "a" || exhausted.Attempts[2].Model != "c" {
		t.Fatalf("attempt log out of order: %+v", exhausted.Attempts)
	}

	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected last failure to be wrapped, got %v", err)
	}
}

func TestFallback_InvalidResponseTriggersFallback(t *testing.T) {
	a := NewNamedMock("a", MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema mismatch")}})
	b := succeeding("b", `{"ok":true}`)
	f := NewFallback(a, b)

	resp, err := f.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestFallback_SchemaCheckTriggersFallback(t *testing.T) {
	schema := &Schema{
		Name:       "positive-int",
		Definition: map[string]any{"type": "integer"},
		Check: func(raw json.RawMessage) error {
			var n int
			if err := json.Unmarshal(raw, &n); err != nil {
				return err
			}
			if n <= 0 {
				return errors.New("must be positive")
			}
			return nil
		},
	}

	// Schema-valid but semantically wrong answer from the first candidate.
	a := succeeding("a", `-3`)
	b := succeeding("b", `7`)
	f := NewFallback(a, b)

	resp, err := f.Generate(context.Background(), Request{Schema: schema})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `7` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if a.CallCount() != 1 || b.CallCount() != 1 {
		t.Fatalf("expected one attempt per candidate, got a=%d b=%d", a.CallCount(), b.CallCount())
	}
}

func collectStream(t *testing.T, s Stream) string {
	t.Helper()
	var b strings.Builder
	for {
		frag, err := s.Recv()
		if err == io.EOF {
			return b.String()
		}
		if err != nil {
			t.Fatalf("stream surfaced an error: %v", err)
		}
		b.WriteString(frag)
	}
}

func TestFallbackStream_ConnectionFallback(t *testing.T) {
	a := failing("a")
	b := NewNamedMock("b", MockResponse{Fragments: []string{"Xin ", "chào"}})
	f := NewFallback(a, b)

	s, err := f.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("stream fallback must not return an error: %v", err)
	}
	if got := collectStream(t, s); got != "Xin chào" {
		t.Fatalf("unexpected stream content: %q", got)
	}
}

func TestFallbackStream_AllConnectionsFailYieldsNotice(t *testing.T) {
	f := NewFallback(failing("a"), failing("b"))

	s, err := f.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("stream fallback must not return an error: %v", err)
	}
	got := collectStream(t, s)
	if !strings.Contains(got, "Lỗi kết nối API") {
		t.Fatalf("expected a terminal connection notice, got %q", got)
	}
}

func TestFallbackStream_MidStreamInterruptAppendsNotice(t *testing.T) {
	a := NewNamedMock("a", MockResponse{
		Fragments: []string{"một phần "},
		StreamErr: &ErrProviderUnavailable{Err: errors.New("reset")},
	})
	b := NewNamedMock("b", MockResponse{Fragments: []string{"never"}})
	f := NewFallback(a, b)

	s, err := f.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := collectStream(t, s)
	if !strings.HasPrefix(got, "một phần ") {
		t.Fatalf("partial output lost: %q", got)
	}
	if !strings.Contains(got, "Kết nối bị gián đoạn") {
		t.Fatalf("expected interrupt notice appended, got %q", got)
	}
	// No restart on another candidate after partial delivery.
	if b.CallCount() != 0 {
		t.Fatal("stream must not restart on a different candidate")
	}
}

func TestVendorFor(t *testing.T) {
	cases := map[string]string{
		"gemini-2.5-flash":     "gemini",
		"gpt-4o-mini":          "openai",
		"claude-haiku-4-5":     "anthropic",
		"gemini-3-pro-preview": "gemini",
	}
	for model, want := range cases {
		if got := VendorFor(model); got != want {
			t.Errorf("VendorFor(%q) = %q, want %q", model, got, want)
		}
	}
}
