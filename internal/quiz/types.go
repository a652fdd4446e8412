// Package quiz generates 15-question practice sets for a lesson and walks the
// learner through them one question at a time with immediate feedback.
package quiz

// QuestionType discriminates how a question is answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// Difficulty uses the three cognitive levels of the Vietnamese curriculum.
// The wire tokens are kept as-is so prompts and model output line up.
type Difficulty string

const (
	Recall        Difficulty = "nhan_biet"
	Comprehension Difficulty = "thong_hieu"
	Application   Difficulty = "van_dung"
)

// Question is a single generated exercise. Options is populated only for
// multiple choice; true/false answers are the literals "Đúng" and "Sai".
type Question struct {
	ID            int          `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Difficulty    Difficulty   `json:"difficulty"`
	Explanation   string       `json:"explanation"`
}

// QuestionCount is the fixed size of every generated quiz.
const QuestionCount = 15
