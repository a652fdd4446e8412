package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/screen"
	"github.com/tranhn/khtn/internal/ui/components"
	"github.com/tranhn/khtn/internal/ui/layout"
	"github.com/tranhn/khtn/internal/ui/theme"
)

// editable profile fields, in display order
const (
	fieldName = iota
	fieldClass
	fieldSchool
	fieldGender
	fieldDOB
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Họ và tên",
	"Lớp",
	"Trường",
	"Giới tính",
	"Ngày sinh",
}

// ProfileScreen shows the learner card, study stats, and inline editing.
type ProfileScreen struct {
	svc *profile.Service

	prof  profile.UserProfile
	stats profile.Stats

	cursor  int
	editing bool
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)
var _ screen.InputCapturer = (*ProfileScreen)(nil)

// New creates a ProfileScreen backed by the profile service.
func New(svc *profile.Service) *ProfileScreen {
	p := &ProfileScreen{svc: svc}
	p.reload()
	return p
}

func (p *ProfileScreen) reload() {
	p.prof = p.svc.Profile()
	p.stats = p.svc.Stats()
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Hồ sơ"
}

func (p *ProfileScreen) CapturingInput() bool {
	return p.editing
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Lưu"},
			{Key: "Esc", Description: "Hủy"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Chọn mục"},
		{Key: "Enter", Description: "Sửa"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.editing {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	if p.editing {
		return p.handleEditKey(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < fieldCount-1 {
			p.cursor++
		}
	case "enter":
		return p.startEdit()
	}

	return p, nil
}

// startEdit enters edit mode for the selected field. Gender toggles
// immediately instead of opening an input.
func (p *ProfileScreen) startEdit() (screen.Screen, tea.Cmd) {
	if p.cursor == fieldGender {
		gender := profile.Female
		if p.prof.Gender == profile.Female {
			gender = profile.Male
		}
		if _, err := p.svc.Update(profile.Patch{Gender: &gender}); err != nil {
			p.errMsg = err.Error()
			return p, nil
		}
		p.reload()
		return p, nil
	}

	p.editing = true
	p.input = components.NewTextInput(p.fieldValue(p.cursor), false, 80)
	return p, p.input.Init()
}

func (p *ProfileScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.editing = false
		return p, nil
	case "enter":
		value := strings.TrimSpace(p.input.Value())
		p.editing = false
		if value == "" {
			return p, nil
		}
		patch := profile.Patch{}
		switch p.cursor {
		case fieldName:
			patch.Name = &value
		case fieldClass:
			patch.Class = &value
		case fieldSchool:
			patch.School = &value
		case fieldDOB:
			patch.DateOfBirth = &value
		}
		if _, err := p.svc.Update(patch); err != nil {
			p.errMsg = err.Error()
			return p, nil
		}
		p.errMsg = ""
		p.reload()
		return p, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) fieldValue(field int) string {
	switch field {
	case fieldName:
		return p.prof.Name
	case fieldClass:
		return p.prof.Class
	case fieldSchool:
		return p.prof.School
	case fieldGender:
		if p.prof.Gender == profile.Female {
			return "Nữ"
		}
		return "Nam"
	case fieldDOB:
		return p.prof.DateOfBirth
	}
	return ""
}

func (p *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	// Identity card.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + p.prof.Name))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %s · tham gia %s", p.prof.ID, p.prof.JoinDate)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 1))))
	b.WriteString("\n\n")

	// Editable fields.
	for i := 0; i < fieldCount; i++ {
		label := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(12).
			Render(fieldLabels[i])

		var line string
		if p.editing && i == p.cursor {
			line = fmt.Sprintf("  ▸ %s  %s", label, p.input.View())
		} else if i == p.cursor {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(fmt.Sprintf("  ▸ %s  %s", label, p.fieldValue(i)))
		} else {
			line = lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("    %s  %s", label, p.fieldValue(i)))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + p.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Thống kê học tập"))
	b.WriteString("\n\n")
	b.WriteString(p.renderStats(width))

	return b.String()
}

func (p *ProfileScreen) renderStats(width int) string {
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	rows := []string{
		fmt.Sprintf("    %s  %s", value.Render(fmt.Sprintf("%4d", p.stats.Solved)), label.Render("bài trắc nghiệm đã hoàn thành")),
		fmt.Sprintf("    %s  %s", value.Render(fmt.Sprintf("%4d", p.stats.QuestionsDone)), label.Render("câu hỏi đã trả lời")),
		fmt.Sprintf("    %s  %s", value.Render(fmt.Sprintf("%4.1f", p.stats.AverageScore())), label.Render("điểm trung bình")),
		fmt.Sprintf("    %s  %s", value.Render(fmt.Sprintf("%4.0f", p.stats.CombinedMinutes())), label.Render("phút học (làm bài + lý thuyết)")),
		fmt.Sprintf("    %s  %s", value.Render(fmt.Sprintf("%4d", p.stats.Streak)), label.Render("ngày học liên tiếp")),
	}

	out := strings.Join(rows, "\n") + "\n\n"

	// Accuracy bar over all answered questions.
	if p.stats.QuestionsDone > 0 {
		accuracy := p.stats.AverageScore() / 10
		bar := components.NewProgressBar("    Độ chính xác", accuracy, true, minInt(width-12, 60))
		out += bar.View() + "\n"
	}

	return out
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
