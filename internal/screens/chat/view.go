package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/chat"
	"github.com/tranhn/khtn/internal/render"
	"github.com/tranhn/khtn/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	textWidth := width - 8
	if textWidth < 20 {
		textWidth = 20
	}

	// Transcript, most recent at the bottom.
	var lines []string
	for _, m := range c.messages {
		lines = append(lines, renderMessage(m, textWidth)...)
		lines = append(lines, "")
	}
	if c.streaming {
		if c.partial != "" {
			lines = append(lines, renderBody(chat.SenderAI, c.partial, textWidth)...)
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %s Gia sư đang suy nghĩ...", spinnerFrames[c.spinner%len(spinnerFrames)])))
		}
	}
	if len(c.messages) == 0 && !c.streaming {
		lines = append(lines,
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Hỏi bất cứ điều gì về Lý, Hóa, Sinh."),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Tab đổi chế độ gợi mở / chi tiết, Ctrl+F đính kèm ảnh bài tập."),
		)
	}

	// Reserve rows for the input area.
	inputRows := 3
	if c.status != "" || c.attachName != "" {
		inputRows++
	}
	visible := height - inputRows
	if visible < 1 {
		visible = 1
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	for i := len(lines); i < visible; i++ {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 1))))
	b.WriteString("\n")

	if c.attachName != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  📎 " + c.attachName + "  (Ctrl+X để gỡ)"))
		b.WriteString("\n")
	} else if c.status != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + c.status))
		b.WriteString("\n")
	}

	modeTag := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render("[" + modeLabel(c.mode) + "]")
	b.WriteString("  " + modeTag + " " + c.input.View())

	return b.String()
}

// renderMessage renders one transcript entry as wrapped lines.
func renderMessage(m chat.Message, width int) []string {
	return renderBody(m.Sender, m.Text, width)
}

func renderBody(sender chat.Sender, text string, width int) []string {
	var label, body string
	if sender == chat.SenderUser {
		label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Bạn")
		body = lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(text)
	} else {
		label = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Gia sư")
		body = lipgloss.NewStyle().Width(width).Render(render.Text(text))
	}

	out := []string{label}
	for _, line := range strings.Split(body, "\n") {
		out = append(out, "  "+line)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
