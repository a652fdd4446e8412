package quiz

import (
	"github.com/tranhn/khtn/internal/llm"
)

// quizSchema constrains the model output to an array of exactly 15 questions.
// Structural violations fail schema validation, and Check covers the rules a
// JSON schema cannot express; either failure counts as an attempt failure in
// the fallback loop, which moves on to the next model.
var quizSchema = &llm.Schema{
	Name:        "quiz_v1",
	Description: "Bộ đề 15 câu hỏi trắc nghiệm",
	Check:       checkQuestionSet,
	Definition: map[string]any{
		"type":     "array",
		"minItems": QuestionCount,
		"maxItems": QuestionCount,
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "type", "question", "correctAnswer", "difficulty", "explanation"},
			"properties": map[string]any{
				"id": map[string]any{"type": "number"},
				"type": map[string]any{
					"type": "string",
					"enum": []any{string(MultipleChoice), string(TrueFalse)},
				},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Chỉ dành cho multiple_choice. Cung cấp đúng 4 phương án.",
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"description": "Đáp án đúng chính xác hoặc \"Đúng\"/\"Sai\" cho câu hỏi true_false",
				},
				"difficulty": map[string]any{
					"type": "string",
					"enum": []any{string(Recall), string(Comprehension), string(Application)},
				},
				"explanation": map[string]any{"type": "string"},
			},
		},
	},
}
