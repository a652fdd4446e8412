package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/ui/theme"
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	italicStyle = lipgloss.NewStyle().Italic(true).Foreground(theme.TextDim)
	mathStyle   = lipgloss.NewStyle().Foreground(theme.Accent)
	blockStyle  = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).PaddingLeft(4)
	bulletStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
)

const bulletMarker = "• "

// Text renders tutor output for the terminal: markdown emphasis becomes
// styled text, math spans become unicode, bullets get a marker.
func Text(content string) string {
	var b strings.Builder
	for _, n := range Parse(content) {
		switch n.Kind {
		case KindBreak:
			b.WriteString("\n")
		case KindBullet:
			b.WriteString(bulletStyle.Render(bulletMarker))
		case KindBold:
			b.WriteString(boldStyle.Render(n.Content))
		case KindItalic:
			b.WriteString(italicStyle.Render(n.Content))
		case KindInlineMath:
			b.WriteString(mathStyle.Render(PrettyMath(n.Content)))
		case KindBlockMath:
			b.WriteString("\n" + blockStyle.Render(PrettyMath(n.Content)) + "\n")
		default:
			b.WriteString(n.Content)
		}
	}
	return b.String()
}

// Plain renders without ANSI styling, for tests and non-TTY output.
func Plain(content string) string {
	var b strings.Builder
	for _, n := range Parse(content) {
		switch n.Kind {
		case KindBreak:
			b.WriteString("\n")
		case KindBullet:
			b.WriteString(bulletMarker)
		case KindInlineMath, KindBlockMath:
			b.WriteString(PrettyMath(n.Content))
		default:
			b.WriteString(n.Content)
		}
	}
	return b.String()
}
