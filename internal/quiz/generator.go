package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tranhn/khtn/internal/llm"
)

const mcOptionCount = 4

// Generator produces question sets through the model fallback chain.
type Generator struct {
	backend llm.Provider
}

func NewGenerator(backend llm.Provider) *Generator {
	return &Generator{backend: backend}
}

// Generate builds a 15-question set for the given lesson. Schema and
// semantic violations are caught per candidate inside the fallback loop via
// quizSchema.Check, so a bad set from one model is retried on the next; the
// validation repeated here guards direct use of a single provider.
func (g *Generator) Generate(ctx context.Context, lessonTitle, grade string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	resp, err := g.backend.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(lessonTitle, grade)},
		},
		Schema:      quizSchema,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(resp.Content, &questions); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	if err := validateQuestions(questions); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return questions, nil
}

// checkQuestionSet is the schema's semantic hook, run per fallback attempt.
func checkQuestionSet(raw json.RawMessage) error {
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return err
	}
	return validateQuestions(questions)
}

func validateQuestions(questions []Question) error {
	if len(questions) != QuestionCount {
		return fmt.Errorf("expected %d questions, got %d", QuestionCount, len(questions))
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("question %d has empty text", i+1)
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return fmt.Errorf("question %d has empty answer", i+1)
		}
		switch q.Type {
		case MultipleChoice:
			if len(q.Options) != mcOptionCount {
				return fmt.Errorf("question %d: expected %d options, got %d", i+1, mcOptionCount, len(q.Options))
			}
			if !containsAnswer(q.Options, q.CorrectAnswer) {
				return fmt.Errorf("question %d: correct answer not among options", i+1)
			}
		case TrueFalse:
			if !IsCorrect(q.CorrectAnswer, "Đúng") && !IsCorrect(q.CorrectAnswer, "Sai") {
				return fmt.Errorf("question %d: true/false answer must be Đúng or Sai", i+1)
			}
		case ShortAnswer:
			// Accepted if the model produces one despite the prompt.
		default:
			return fmt.Errorf("question %d: unknown type %q", i+1, q.Type)
		}
		switch q.Difficulty {
		case Recall, Comprehension, Application:
		default:
			return fmt.Errorf("question %d: unknown difficulty %q", i+1, q.Difficulty)
		}
	}
	return nil
}

func containsAnswer(options []string, answer string) bool {
	for _, opt := range options {
		if IsCorrect(opt, answer) {
			return true
		}
	}
	return false
}
