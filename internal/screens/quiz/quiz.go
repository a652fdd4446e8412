package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/quiz"
	"github.com/tranhn/khtn/internal/render"
	"github.com/tranhn/khtn/internal/router"
	"github.com/tranhn/khtn/internal/screen"
	"github.com/tranhn/khtn/internal/ui/components"
	"github.com/tranhn/khtn/internal/ui/layout"
)

type phase int

const (
	phaseGenerating phase = iota
	phaseActive
	phaseFeedback
	phaseResult
)

// tfOptions are the fixed choices shown for true/false questions.
var tfOptions = []string{"Đúng", "Sai"}

// QuizScreen runs one generated question set for a lesson.
type QuizScreen struct {
	generator  *quiz.Generator
	profileSvc *profile.Service
	lesson     string
	grade      string

	phase        phase
	sess         *quiz.Session
	mc           components.MultiChoice
	input        components.TextInput
	resultChoice int
	elapsed      time.Duration
	spinner      int
	errMsg       string
	recorded     bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that generates questions for the given lesson.
func New(backend llm.Provider, profileSvc *profile.Service, lessonTitle, grade string) *QuizScreen {
	return &QuizScreen{
		generator:  quiz.NewGenerator(backend),
		profileSvc: profileSvc,
		lesson:     lessonTitle,
		grade:      grade,
		input:      components.NewTextInput("Nhập câu trả lời...", false, 60),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.generate(), spinnerTick())
}

func (q *QuizScreen) Title() string {
	return "Trắc nghiệm"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseGenerating:
		return []layout.KeyHint{{Key: "Esc", Description: "Hủy"}}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Tiếp tục"}}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "R", Description: "Làm lại"},
			{Key: "Enter", Description: "Hoàn thành"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓ / 1-4", Description: "Chọn"},
			{Key: "Enter", Description: "Trả lời"},
			{Key: "Esc", Description: "Bỏ dở"},
		}
	}
}

// generate asks the orchestrator for a fresh question set.
func (q *QuizScreen) generate() tea.Cmd {
	gen, lesson, grade := q.generator, q.lesson, q.grade
	return func() tea.Msg {
		questions, err := gen.Generate(context.Background(), lesson, grade)
		return questionsReadyMsg{Questions: questions, Err: err}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return q.handleQuestionsReady(msg)

	case timerTickMsg:
		if q.phase == phaseActive || q.phase == phaseFeedback {
			q.elapsed = q.sess.Elapsed()
			return q, tickCmd()
		}
		return q, nil

	case spinnerTickMsg:
		if q.phase != phaseGenerating {
			return q, nil
		}
		q.spinner++
		return q, spinnerTick()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	// Forward everything else to the short answer input.
	if q.phase == phaseActive && q.currentType() == quiz.ShortAnswer {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.errMsg = msg.Err.Error()
		return q, nil
	}
	q.sess = quiz.NewSession(q.lesson, q.grade, msg.Questions)
	q.phase = phaseActive
	q.setupQuestion()
	return q, tickCmd()
}

// setupQuestion prepares the input component for the current question.
func (q *QuizScreen) setupQuestion() {
	cur := q.sess.Current()
	if cur.Type == quiz.ShortAnswer {
		q.input = components.NewTextInput("Nhập câu trả lời...", false, 60)
		return
	}

	opts := q.currentOptions()
	correct := 0
	for i, opt := range opts {
		if quiz.IsCorrect(opt, cur.CorrectAnswer) {
			correct = i
			break
		}
	}
	pretty := make([]string, len(opts))
	for i, opt := range opts {
		pretty[i] = render.PrettyMath(opt)
	}
	q.mc = components.NewMultiChoice("", pretty, correct)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch q.phase {
	case phaseGenerating:
		return q, nil

	case phaseFeedback:
		if key == "enter" {
			return q.advance()
		}
		return q, nil

	case phaseResult:
		switch key {
		case "left", "h", "right", "l", "tab":
			q.resultChoice = 1 - q.resultChoice
		case "r", "R":
			return q.retry()
		case "enter":
			if q.resultChoice == 0 {
				return q.retry()
			}
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil

	case phaseActive:
		return q.handleAnswerKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	opts := q.currentOptions()

	if q.currentType() == quiz.ShortAnswer {
		if key == "enter" {
			answer := q.input.Value()
			if answer == "" {
				return q, nil
			}
			q.sess.Answer(answer)
			q.sess.Confirm()
			q.phase = phaseFeedback
			return q, nil
		}
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}

	// Number keys jump straight to an option and submit it.
	switch key {
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(opts) {
			q.mc.Selected = idx
			q.mc.Submitted = true
			q.mc.ChosenIndex = idx
		}
	default:
		q.mc, _ = q.mc.Update(msg)
	}

	if q.mc.Submitted {
		q.sess.Answer(opts[q.mc.ChosenIndex])
		q.phase = phaseFeedback
	}
	return q, nil
}

// retry re-runs the same question set from the start.
func (q *QuizScreen) retry() (screen.Screen, tea.Cmd) {
	q.sess.Retry()
	q.phase = phaseActive
	q.recorded = false
	q.elapsed = 0
	q.setupQuestion()
	return q, tickCmd()
}

// advance moves to the next question, or finishes the run and records the
// result exactly once.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	summary, done := q.sess.Next()
	if done {
		q.phase = phaseResult
		q.resultChoice = 1
		if q.profileSvc != nil && !q.recorded {
			_ = q.profileSvc.RecordQuizResult(summary.Score, summary.Total, summary.Elapsed)
			q.recorded = true
		}
		return q, nil
	}

	q.phase = phaseActive
	q.setupQuestion()
	if q.currentType() == quiz.ShortAnswer {
		return q, q.input.Init()
	}
	return q, nil
}

func (q *QuizScreen) currentType() quiz.QuestionType {
	if q.sess == nil {
		return quiz.MultipleChoice
	}
	return q.sess.Current().Type
}

// currentOptions returns the selectable answers for the current question.
func (q *QuizScreen) currentOptions() []string {
	if q.sess == nil {
		return nil
	}
	cur := q.sess.Current()
	if cur.Type == quiz.TrueFalse {
		return tfOptions
	}
	return cur.Options
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// spinnerTick returns a short tick for the generating animation.
func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
