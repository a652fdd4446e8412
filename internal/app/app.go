package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/chat"
	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/router"
	"github.com/tranhn/khtn/internal/screen"
	"github.com/tranhn/khtn/internal/screens/home"
	"github.com/tranhn/khtn/internal/store"
	"github.com/tranhn/khtn/internal/theory"
	"github.com/tranhn/khtn/internal/ui/layout"
)

// Options carries the app's wired dependencies.
type Options struct {
	Store *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	profileSvc *profile.Service
	width      int
	height     int
}

// newAppModel wires the services and creates the home screen.
func newAppModel(opts Options) AppModel {
	kv := opts.Store.KV()
	eventRepo := opts.Store.EventRepo()

	backend := llm.NewReloading(kv, eventRepo)
	profileSvc := profile.NewService(kv)
	theorySvc := theory.NewService(backend, kv)
	chatSvc := chat.NewService(backend, profileSvc)

	homeScreen := home.New(backend, profileSvc, theorySvc, chatSvc, kv)
	return AppModel{
		router:     router.New(homeScreen),
		profileSvc: profileSvc,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that are capturing text handle Esc themselves.
			if capturer, ok := m.router.Active().(screen.InputCapturer); ok && capturer.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, m.router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.profileSvc.Stats()
	header := layout.RenderHeader(title, stats.AverageScore(), stats.Streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Quay lại"},
				{Key: "Ctrl+C", Description: "Thoát"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Chọn"},
				{Key: "Enter", Description: "Mở"},
				{Key: "Ctrl+C", Description: "Thoát"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
