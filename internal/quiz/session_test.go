package quiz

import (
	"testing"
	"time"
)

func sampleQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:            i + 1,
			Type:          MultipleChoice,
			Question:      "Chất nào sau đây là đơn chất?",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Difficulty:    Recall,
			Explanation:   "A là đơn chất.",
		}
	}
	return qs
}

func TestSession_AutoConfirmMultipleChoice(t *testing.T) {
	s := NewSession("Nguyên tử", "7", sampleQuestions(15))

	s.Answer("A")
	if !s.Confirmed() {
		t.Fatal("multiple choice should confirm on answer")
	}

	// Locked after confirmation.
	s.Answer("B")
	if s.CurrentAnswer() != "A" {
		t.Fatalf("confirmed answer must not change, got %q", s.CurrentAnswer())
	}
}

func TestSession_ShortAnswerNeedsConfirm(t *testing.T) {
	qs := sampleQuestions(15)
	qs[0].Type = ShortAnswer
	qs[0].Options = nil
	s := NewSession("Đo chiều dài", "6", qs)

	s.Answer("1 mét")
	if s.Confirmed() {
		t.Fatal("short answer must not auto-confirm")
	}

	// Still editable before confirmation.
	s.Answer("100 cm")
	if s.CurrentAnswer() != "100 cm" {
		t.Fatalf("unconfirmed answer should be editable, got %q", s.CurrentAnswer())
	}

	s.Confirm()
	if !s.Confirmed() {
		t.Fatal("explicit confirm should lock the step")
	}
}

func TestSession_ConfirmEmptyShortAnswerIsNoop(t *testing.T) {
	qs := sampleQuestions(15)
	qs[0].Type = ShortAnswer
	s := NewSession("Đo chiều dài", "6", qs)

	s.Confirm()
	if s.Confirmed() {
		t.Fatal("confirming an empty answer must be a no-op")
	}
}

func TestSession_NextRequiresConfirmation(t *testing.T) {
	s := NewSession("Nguyên tử", "7", sampleQuestions(15))

	if _, done := s.Next(); done || s.Step() != 0 {
		t.Fatal("must not advance past an unconfirmed question")
	}

	s.Answer("A")
	if _, done := s.Next(); done || s.Step() != 1 {
		t.Fatalf("expected step 1, got %d", s.Step())
	}
}

func TestSession_FinishOnLastQuestion(t *testing.T) {
	s := NewSession("Nguyên tử", "7", sampleQuestions(15))
	start := time.Now()
	s.now = func() time.Time { return start }
	s.startedAt = start

	for i := 0; i < 15; i++ {
		if i < 10 {
			s.Answer("A") // correct
		} else {
			s.Answer("B")
		}
		summary, done := s.Next()
		if i < 14 {
			if done {
				t.Fatalf("finished early at step %d", i)
			}
			continue
		}
		if !done {
			t.Fatal("last Next should finish the run")
		}
		if summary.Score != 10 || summary.Total != 15 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	}

	if !s.Finished() {
		t.Fatal("session should be finished")
	}
	// Finishing happens once; further Next calls are no-ops.
	if _, done := s.Next(); done {
		t.Fatal("Next after finish must not produce a second summary")
	}
}

func TestSession_RetryKeepsQuestions(t *testing.T) {
	qs := sampleQuestions(15)
	s := NewSession("Nguyên tử", "7", qs)
	for i := 0; i < 15; i++ {
		s.Answer("A")
		s.Next()
	}
	if !s.Finished() {
		t.Fatal("expected finished session")
	}

	s.Retry()
	if s.Finished() || s.Step() != 0 || s.Score() != 0 {
		t.Fatal("retry must reset progress")
	}
	if len(s.Questions()) != 15 || s.Questions()[0].ID != qs[0].ID {
		t.Fatal("retry must reuse the same question set")
	}
}

func TestIsCorrect_TrimAndFold(t *testing.T) {
	cases := []struct {
		given, expected string
		want            bool
	}{
		{"đúng ", "Đúng", true},
		{"  SAI", "Sai", true},
		{"A", "A", true},
		{"20 m/s", "20 M/S", true},
		{"Sai", "Đúng", false},
		{"", "Đúng", false},
	}
	for _, c := range cases {
		if got := IsCorrect(c.given, c.expected); got != c.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", c.given, c.expected, got, c.want)
		}
	}
}
