package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/screen"
	"github.com/tranhn/khtn/internal/store"
	"github.com/tranhn/khtn/internal/ui/components"
	"github.com/tranhn/khtn/internal/ui/layout"
	"github.com/tranhn/khtn/internal/ui/theme"
)

const (
	itemAPIKey = iota
	itemModel
	itemCount
)

// SettingsScreen edits the API credential and preferred model.
type SettingsScreen struct {
	kv store.KV

	cursor  int
	editing bool
	input   components.TextInput

	apiKey string
	model  string
	status string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.InputCapturer = (*SettingsScreen)(nil)

// New creates a SettingsScreen reading current values from the store.
func New(kv store.KV) *SettingsScreen {
	s := &SettingsScreen{kv: kv, model: llm.DefaultModel}
	if k, err := kv.GetString(llm.SettingAPIKey); err == nil {
		s.apiKey = k
	}
	if m, err := kv.GetString(llm.SettingPreferredModel); err == nil && m != "" {
		s.model = m
	}
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Cài đặt"
}

func (s *SettingsScreen) CapturingInput() bool {
	return s.editing
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Lưu"},
			{Key: "Esc", Description: "Hủy"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Chọn"},
		{Key: "Enter", Description: "Sửa / đổi"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		switch kmsg.String() {
		case "esc":
			s.editing = false
			return s, nil
		case "enter":
			key := strings.TrimSpace(s.input.Value())
			s.editing = false
			if key == "" {
				return s, nil
			}
			if err := s.kv.SetString(llm.SettingAPIKey, key); err != nil {
				s.status = "Không lưu được: " + err.Error()
				return s, nil
			}
			s.apiKey = key
			s.status = "Đã lưu API Key."
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(kmsg)
		return s, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < itemCount-1 {
			s.cursor++
		}
	case "enter":
		return s.activate()
	}

	return s, nil
}

// activate opens the key editor or cycles to the next available model.
func (s *SettingsScreen) activate() (screen.Screen, tea.Cmd) {
	switch s.cursor {
	case itemAPIKey:
		s.editing = true
		s.status = ""
		s.input = components.NewTextInput("Dán khóa Gemini API...", false, 200)
		return s, s.input.Init()

	case itemModel:
		next := 0
		for i, m := range llm.AvailableModels {
			if m == s.model {
				next = (i + 1) % len(llm.AvailableModels)
				break
			}
		}
		s.model = llm.AvailableModels[next]
		if err := s.kv.SetString(llm.SettingPreferredModel, s.model); err != nil {
			s.status = "Không lưu được: " + err.Error()
			return s, nil
		}
		s.status = "Mô hình ưu tiên: " + s.model
	}
	return s, nil
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Kết nối AI"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("API Key        %s", s.maskedKey()),
		fmt.Sprintf("Mô hình ưu tiên  %s", s.model),
	}

	for i, row := range rows {
		if s.editing && i == s.cursor {
			b.WriteString("  ▸ API Key        " + s.input.View())
		} else if i == s.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + row))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.status != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.status))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Khi mô hình ưu tiên quá tải, hệ thống tự chuyển sang mô hình dự phòng.\n  Thay đổi có hiệu lực ngay ở yêu cầu tiếp theo."))

	return b.String()
}

func (s *SettingsScreen) maskedKey() string {
	if s.apiKey == "" {
		return "(chưa cấu hình, dùng biến môi trường GEMINI_API_KEY nếu có)"
	}
	if len(s.apiKey) <= 8 {
		return "••••"
	}
	return s.apiKey[:4] + strings.Repeat("•", 8) + s.apiKey[len(s.apiKey)-4:]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
