package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/quiz"
	"github.com/tranhn/khtn/internal/render"
	"github.com/tranhn/khtn/internal/ui/components"
	"github.com/tranhn/khtn/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var difficultyLabels = map[quiz.Difficulty]string{
	quiz.Recall:        "Nhận biết",
	quiz.Comprehension: "Thông hiểu",
	quiz.Application:   "Vận dụng",
}

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Không tạo được bộ câu hỏi.\n\n" + q.errMsg + "\n\nNhấn phím bất kỳ để quay lại.")
	}

	switch q.phase {
	case phaseGenerating:
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s Đang soạn 15 câu hỏi cho \"%s\"...\n\nThường mất khoảng nửa phút.",
				spinnerFrames[q.spinner%len(spinnerFrames)], q.lesson))
	case phaseResult:
		return q.renderResult(width, height)
	default:
		return q.renderQuestion(width, height)
	}
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	cur := q.sess.Current()

	var b strings.Builder

	// Progress and timer line.
	mins := int(q.elapsed.Minutes())
	secs := int(q.elapsed.Seconds()) % 60
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Câu %d/%d", q.sess.Step()+1, q.sess.Len()))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ⏱ %d:%02d", difficultyLabels[cur.Difficulty], mins, secs))

	pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", pad) + infoRight)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 1))))
	b.WriteString("\n\n")

	// Question text with math rendering.
	question := lipgloss.NewStyle().
		Width(maxInt(width-8, 20)).
		Render(render.Text(cur.Question))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	if q.currentType() == quiz.ShortAnswer {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Trả lời: "+q.input.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.mc.View()))
	}

	if q.phase == phaseFeedback {
		b.WriteString("\n\n")
		b.WriteString(q.renderFeedback(width))
	}

	return b.String()
}

func (q *QuizScreen) renderFeedback(width int) string {
	cur := q.sess.Current()

	var b strings.Builder
	if q.sess.CurrentCorrect() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Chính xác!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Chưa đúng"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Đáp án đúng: " + render.PrettyMath(cur.CorrectAnswer)))
	}

	if cur.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(minInt(width-8, 70)).
			Render(render.Text(cur.Explanation))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nhấn Enter để tiếp tục..."))

	return b.String()
}

func (q *QuizScreen) renderResult(width, height int) string {
	score := q.sess.Score()
	total := q.sess.Len()
	var point float64
	if total > 0 {
		point = float64(score) / float64(total) * 10
	}

	mins := int(q.sess.Elapsed().Minutes())
	secs := int(q.sess.Elapsed().Seconds()) % 60

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Hoàn thành!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%.1f điểm", point)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Đúng %d/%d câu trong %d:%02d", score, total, mins, secs)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(score)/float64(maxInt(total, 1)), true, minInt(width-20, 50))
	b.WriteString(bar.View())
	b.WriteString("\n\n\n")

	retryBtn := components.NewButton("Làm lại", q.resultChoice == 0, nil)
	doneBtn := components.NewButton("Hoàn thành", q.resultChoice == 1, nil)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, retryBtn.View(), "   ", doneBtn.View()))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
