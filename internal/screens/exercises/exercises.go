package exercises

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/curriculum"
	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/router"
	"github.com/tranhn/khtn/internal/screen"
	quizscreen "github.com/tranhn/khtn/internal/screens/quiz"
	theoryscreen "github.com/tranhn/khtn/internal/screens/theory"
	"github.com/tranhn/khtn/internal/theory"
	"github.com/tranhn/khtn/internal/ui/layout"
	"github.com/tranhn/khtn/internal/ui/theme"
)

// browse levels, outermost first
const (
	levelGrade = iota
	levelChapter
	levelLesson
	levelAction
)

var actionLabels = []string{"Ôn lý thuyết", "Làm bài trắc nghiệm"}

// ExercisesScreen lets the learner drill down grade, chapter, lesson and
// pick between the theory view and a quiz.
type ExercisesScreen struct {
	backend    llm.Provider
	theorySvc  *theory.Service
	profileSvc *profile.Service

	level   int
	cursor  int
	scroll  int
	grade   string
	chapter curriculum.Chapter
	lesson  curriculum.Lesson
}

var _ screen.Screen = (*ExercisesScreen)(nil)
var _ screen.KeyHintProvider = (*ExercisesScreen)(nil)

// New creates the exercise browser starting at grade selection.
func New(backend llm.Provider, theorySvc *theory.Service, profileSvc *profile.Service) *ExercisesScreen {
	return &ExercisesScreen{
		backend:    backend,
		theorySvc:  theorySvc,
		profileSvc: profileSvc,
	}
}

func (e *ExercisesScreen) Init() tea.Cmd {
	return nil
}

func (e *ExercisesScreen) Title() string {
	switch e.level {
	case levelGrade:
		return "Luyện tập"
	case levelChapter:
		return fmt.Sprintf("Luyện tập · Lớp %s", e.grade)
	default:
		return fmt.Sprintf("Luyện tập · Lớp %s · %s", e.grade, e.chapter.ID)
	}
}

func (e *ExercisesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Chọn"},
		{Key: "Enter", Description: "Mở"},
	}
	if e.level > levelGrade {
		hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Quay lại"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Trang chủ"})
	return hints
}

// options returns the labels for the current browse level.
func (e *ExercisesScreen) options() []string {
	switch e.level {
	case levelGrade:
		grades := curriculum.Grades()
		out := make([]string, len(grades))
		for i, g := range grades {
			out[i] = fmt.Sprintf("Lớp %s  (%d bài học)", g, curriculum.LessonCount(g))
		}
		return out
	case levelChapter:
		chapters := curriculum.Chapters(e.grade)
		out := make([]string, len(chapters))
		for i, c := range chapters {
			out[i] = fmt.Sprintf("%s. %s", c.ID, c.Title)
		}
		return out
	case levelLesson:
		out := make([]string, len(e.chapter.Lessons))
		for i, l := range e.chapter.Lessons {
			out[i] = fmt.Sprintf("Bài %d: %s", l.ID, l.Title)
		}
		return out
	default:
		return actionLabels
	}
}

func (e *ExercisesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	opts := e.options()

	switch kmsg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(opts)-1 {
			e.cursor++
		}
	case "backspace", "left", "h":
		e.back()
	case "enter", "right", "l":
		return e.enter()
	}

	return e, nil
}

// back pops one browse level. At the grade level the global Esc handler
// already returns to home, so this is a no-op there.
func (e *ExercisesScreen) back() {
	if e.level == levelGrade {
		return
	}
	e.level--
	e.cursor = 0
	e.scroll = 0
}

// enter descends into the selection, or pushes the chosen screen at the
// action level.
func (e *ExercisesScreen) enter() (screen.Screen, tea.Cmd) {
	switch e.level {
	case levelGrade:
		grades := curriculum.Grades()
		if e.cursor < len(grades) {
			e.grade = grades[e.cursor]
			e.level = levelChapter
			e.cursor = 0
			e.scroll = 0
		}
	case levelChapter:
		chapters := curriculum.Chapters(e.grade)
		if e.cursor < len(chapters) {
			e.chapter = chapters[e.cursor]
			e.level = levelLesson
			e.cursor = 0
			e.scroll = 0
		}
	case levelLesson:
		if e.cursor < len(e.chapter.Lessons) {
			e.lesson = e.chapter.Lessons[e.cursor]
			e.level = levelAction
			e.cursor = 0
		}
	case levelAction:
		switch e.cursor {
		case 0:
			return e, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: theoryscreen.New(e.theorySvc, e.profileSvc, e.lesson.Title, e.grade),
				}
			}
		case 1:
			return e, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(e.backend, e.profileSvc, e.lesson.Title, e.grade),
				}
			}
		}
	}
	return e, nil
}

func (e *ExercisesScreen) View(width, height int) string {
	opts := e.options()

	var b strings.Builder

	heading := e.heading()
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + heading))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Keep the cursor visible in tall lists.
	visible := height - 5
	if visible < 1 {
		visible = 1
	}
	if e.cursor < e.scroll {
		e.scroll = e.cursor
	}
	if e.cursor >= e.scroll+visible {
		e.scroll = e.cursor - visible + 1
	}

	end := e.scroll + visible
	if end > len(opts) {
		end = len(opts)
	}

	for i := e.scroll; i < end; i++ {
		if i == e.cursor {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + opts[i]))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + opts[i]))
		}
		b.WriteString("\n")
	}

	if end < len(opts) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("    … %d mục nữa", len(opts)-end)))
	}

	return b.String()
}

func (e *ExercisesScreen) heading() string {
	switch e.level {
	case levelGrade:
		return "Chọn lớp"
	case levelChapter:
		return "Chọn chương"
	case levelLesson:
		return "Chọn bài học"
	default:
		return fmt.Sprintf("Bài %d: %s", e.lesson.ID, e.lesson.Title)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
