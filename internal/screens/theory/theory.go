package theory

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/render"
	"github.com/tranhn/khtn/internal/screen"
	"github.com/tranhn/khtn/internal/theory"
	"github.com/tranhn/khtn/internal/ui/layout"
	"github.com/tranhn/khtn/internal/ui/theme"
)

// theoryLoadedMsg is sent when the cheat sheet arrives (or fails).
type theoryLoadedMsg struct {
	Content string
	Err     error
}

// simulationReadyMsg is sent when an HTML simulation has been written to disk.
type simulationReadyMsg struct {
	Path string
	Err  error
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// TheoryScreen shows the AI-generated summary for one lesson.
type TheoryScreen struct {
	svc        *theory.Service
	profileSvc *profile.Service
	lesson     string
	grade      string

	content    string
	lines      []string
	offset     int
	errMsg     string
	loading    bool
	spinner    int
	openedAt   time.Time
	simBusy    bool
	simStatus  string
}

var _ screen.Screen = (*TheoryScreen)(nil)
var _ screen.KeyHintProvider = (*TheoryScreen)(nil)
var _ screen.Closer = (*TheoryScreen)(nil)

// New creates a TheoryScreen for the given lesson.
func New(svc *theory.Service, profileSvc *profile.Service, lessonTitle, grade string) *TheoryScreen {
	return &TheoryScreen{
		svc:        svc,
		profileSvc: profileSvc,
		lesson:     lessonTitle,
		grade:      grade,
		loading:    true,
		openedAt:   time.Now(),
	}
}

func (t *TheoryScreen) Init() tea.Cmd {
	return tea.Batch(t.load(), spinnerTick())
}

func (t *TheoryScreen) Title() string {
	return "Lý thuyết"
}

func (t *TheoryScreen) KeyHints() []layout.KeyHint {
	if t.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Quay lại"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Cuộn"},
		{Key: "S", Description: "Mô phỏng"},
		{Key: "Esc", Description: "Quay lại"},
	}
}

// Close records the reading time when the router pops this screen.
func (t *TheoryScreen) Close() tea.Cmd {
	if t.profileSvc == nil || t.content == "" {
		return nil
	}
	_ = t.profileSvc.RecordTheoryTime(time.Since(t.openedAt))
	return nil
}

func (t *TheoryScreen) load() tea.Cmd {
	svc, lesson, grade := t.svc, t.lesson, t.grade
	return func() tea.Msg {
		content, err := svc.Lesson(context.Background(), lesson, grade)
		return theoryLoadedMsg{Content: content, Err: err}
	}
}

func (t *TheoryScreen) generateSimulation() tea.Cmd {
	svc, lesson := t.svc, t.lesson
	return func() tea.Msg {
		path, err := svc.Simulation(context.Background(), lesson, "")
		return simulationReadyMsg{Path: path, Err: err}
	}
}

func (t *TheoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case theoryLoadedMsg:
		t.loading = false
		if msg.Err != nil {
			t.errMsg = msg.Err.Error()
			return t, nil
		}
		t.content = msg.Content
		t.lines = strings.Split(render.Text(msg.Content), "\n")
		return t, nil

	case simulationReadyMsg:
		t.simBusy = false
		if msg.Err != nil {
			t.simStatus = "Không tạo được mô phỏng: " + msg.Err.Error()
		} else {
			t.simStatus = "Đã lưu mô phỏng: " + msg.Path + " (mở bằng trình duyệt)"
		}
		return t, nil

	case spinnerTickMsg:
		if !t.loading && !t.simBusy {
			return t, nil
		}
		t.spinner = (t.spinner + 1) % len(spinnerFrames)
		return t, spinnerTick()

	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	return t, nil
}

func (t *TheoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if t.offset > 0 {
			t.offset--
		}
	case "down", "j":
		if t.offset < len(t.lines)-1 {
			t.offset++
		}
	case "pgup":
		t.offset -= 10
		if t.offset < 0 {
			t.offset = 0
		}
	case "pgdown":
		t.offset += 10
		if t.offset > len(t.lines)-1 {
			t.offset = max(len(t.lines)-1, 0)
		}
	case "g":
		t.offset = 0
	case "s", "S":
		if !t.loading && !t.simBusy && t.errMsg == "" {
			t.simBusy = true
			t.simStatus = ""
			return t, tea.Batch(t.generateSimulation(), spinnerTick())
		}
	}
	return t, nil
}

func (t *TheoryScreen) View(width, height int) string {
	if t.loading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s Đang soạn tóm tắt \"%s\"...", spinnerFrames[t.spinner], t.lesson))
	}

	if t.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Không tải được lý thuyết.\n\n" + t.errMsg)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + t.lesson))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	// Status line for the simulation generator.
	statusLines := 0
	if t.simBusy {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("  %s Đang tạo mô phỏng...", spinnerFrames[t.spinner])))
		b.WriteString("\n")
		statusLines = 1
	} else if t.simStatus != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  " + t.simStatus))
		b.WriteString("\n")
		statusLines = 1
	}

	body := height - 3 - statusLines
	if body < 1 {
		body = 1
	}
	if t.offset > len(t.lines)-1 {
		t.offset = max(len(t.lines)-1, 0)
	}
	end := t.offset + body
	if end > len(t.lines) {
		end = len(t.lines)
	}

	textStyle := lipgloss.NewStyle().Width(max(width-6, 20))
	for _, line := range t.lines[t.offset:end] {
		b.WriteString("   " + textStyle.Render(line))
		b.WriteString("\n")
	}

	if end < len(t.lines) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("   ↓ cuộn xuống để xem tiếp"))
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// spinnerTick returns a short tick for the loading animation.
func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
