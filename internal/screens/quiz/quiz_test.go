package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/quiz"
	"github.com/tranhn/khtn/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:            1,
			Type:          quiz.MultipleChoice,
			Question:      "Đơn vị đo lực là gì?",
			Options:       []string{"Niutơn (N)", "Kilôgam (kg)", "Mét (m)", "Jun (J)"},
			CorrectAnswer: "Niutơn (N)",
			Difficulty:    quiz.Recall,
			Explanation:   "Lực được đo bằng niutơn, ký hiệu N.",
		},
		{
			ID:            2,
			Type:          quiz.TrueFalse,
			Question:      "Lực ma sát luôn cản trở chuyển động.",
			CorrectAnswer: "Sai",
			Difficulty:    quiz.Comprehension,
			Explanation:   "Ma sát nghỉ giúp ta đi lại được.",
		},
		{
			ID:            3,
			Type:          quiz.ShortAnswer,
			Question:      "Dụng cụ đo lực gọi là gì?",
			CorrectAnswer: "lực kế",
			Difficulty:    quiz.Application,
			Explanation:   "Lực kế dùng lò xo để đo độ lớn của lực.",
		},
	}
}

// testQuiz returns a screen already past the generating phase.
func testQuiz() *QuizScreen {
	q := New(llm.NewMockProvider(), profile.NewService(store.NewMemKV()), "Lực ma sát", "6")
	q.Update(questionsReadyMsg{Questions: testQuestions()})
	return q
}

func TestQuizScreen_Title(t *testing.T) {
	q := testQuiz()
	if q.Title() != "Trắc nghiệm" {
		t.Errorf("Title = %q, want %q", q.Title(), "Trắc nghiệm")
	}
}

func TestQuizScreen_View_Generating(t *testing.T) {
	q := New(llm.NewMockProvider(), nil, "Lực ma sát", "6")
	if q.View(80, 24) == "" {
		t.Error("expected non-empty view while generating")
	}
}

func TestQuizScreen_GenerateError(t *testing.T) {
	q := New(llm.NewMockProvider(), nil, "Lực ma sát", "6")
	q.Update(questionsReadyMsg{Err: &llm.ExhaustedError{}})

	if q.errMsg == "" {
		t.Fatal("expected error message after failed generation")
	}
	if q.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
	// Any key pops back.
	_, cmd := q.Update(keyPress('x'))
	if cmd == nil {
		t.Error("expected a pop command after error")
	}
}

func TestQuizScreen_NumberKeySubmits(t *testing.T) {
	q := testQuiz()

	q.Update(keyPress('1'))
	if q.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", q.phase)
	}
	if !q.sess.CurrentCorrect() {
		t.Error("option 1 should be the correct answer")
	}
}

func TestQuizScreen_ArrowSelectionSubmits(t *testing.T) {
	q := testQuiz()

	q.Update(specialKey(tea.KeyDown))
	q.Update(specialKey(tea.KeyEnter))
	if q.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", q.phase)
	}
	if q.sess.CurrentCorrect() {
		t.Error("option 2 should be wrong")
	}
}

func TestQuizScreen_TrueFalseUsesFixedOptions(t *testing.T) {
	q := testQuiz()

	// Answer question 1 and advance to the true/false question.
	q.Update(keyPress('1'))
	q.Update(specialKey(tea.KeyEnter))
	if q.sess.Current().Type != quiz.TrueFalse {
		t.Fatal("expected a true/false question")
	}

	q.Update(keyPress('2')) // "Sai"
	if q.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", q.phase)
	}
	if !q.sess.CurrentCorrect() {
		t.Error("\"Sai\" should be correct")
	}
}

func TestQuizScreen_ShortAnswerFlow(t *testing.T) {
	q := testQuiz()

	// Burn through the first two questions.
	q.Update(keyPress('1'))
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('2'))
	q.Update(specialKey(tea.KeyEnter))
	if q.sess.Current().Type != quiz.ShortAnswer {
		t.Fatal("expected a short answer question")
	}

	// Enter with an empty input does nothing.
	q.Update(specialKey(tea.KeyEnter))
	if q.phase != phaseActive {
		t.Fatal("empty answer should not submit")
	}

	for _, r := range "Lực kế" {
		q.Update(keyPress(r))
	}
	q.Update(specialKey(tea.KeyEnter))
	if q.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", q.phase)
	}
	if !q.sess.CurrentCorrect() {
		t.Error("answer should match case-insensitively")
	}
}

func TestQuizScreen_ResultAndRetry(t *testing.T) {
	q := testQuiz()

	// Finish all three questions.
	q.Update(keyPress('1'))
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('1')) // wrong
	q.Update(specialKey(tea.KeyEnter))
	for _, r := range "lực kế" {
		q.Update(keyPress(r))
	}
	q.Update(specialKey(tea.KeyEnter))
	q.Update(specialKey(tea.KeyEnter))

	if q.phase != phaseResult {
		t.Fatalf("phase = %d, want result", q.phase)
	}
	if !q.recorded {
		t.Error("finishing should record the result once")
	}
	if q.View(80, 24) == "" {
		t.Error("expected non-empty result view")
	}

	// Default action is Hoàn thành; tab flips to Làm lại.
	if q.resultChoice != 1 {
		t.Errorf("resultChoice = %d, want 1", q.resultChoice)
	}
	q.Update(specialKey(tea.KeyTab))
	if q.resultChoice != 0 {
		t.Errorf("resultChoice = %d, want 0 after tab", q.resultChoice)
	}

	// Retry restarts the same set from question one.
	q.Update(keyPress('r'))
	if q.phase != phaseActive {
		t.Fatalf("phase = %d, want active after retry", q.phase)
	}
	if q.sess.Step() != 0 {
		t.Errorf("Step = %d, want 0 after retry", q.sess.Step())
	}
	if q.recorded {
		t.Error("retry should allow recording again")
	}
}

func TestQuizScreen_ResultEnterPops(t *testing.T) {
	q := testQuiz()
	q.phase = phaseResult
	q.resultChoice = 1

	_, cmd := q.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Error("expected a pop command when finishing")
	}
}

func TestQuizScreen_KeyHintsPerPhase(t *testing.T) {
	q := testQuiz()
	if len(q.KeyHints()) != 3 {
		t.Errorf("active hints = %d, want 3", len(q.KeyHints()))
	}
	q.phase = phaseResult
	if len(q.KeyHints()) != 2 {
		t.Errorf("result hints = %d, want 2", len(q.KeyHints()))
	}
}
