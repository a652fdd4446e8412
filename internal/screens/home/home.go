package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/chat"
	"github.com/tranhn/khtn/internal/llm"
	"github.com/tranhn/khtn/internal/profile"
	"github.com/tranhn/khtn/internal/router"
	"github.com/tranhn/khtn/internal/screen"
	chatscreen "github.com/tranhn/khtn/internal/screens/chat"
	"github.com/tranhn/khtn/internal/screens/exercises"
	profilescreen "github.com/tranhn/khtn/internal/screens/profile"
	"github.com/tranhn/khtn/internal/screens/settings"
	"github.com/tranhn/khtn/internal/store"
	"github.com/tranhn/khtn/internal/theory"
	"github.com/tranhn/khtn/internal/ui/components"
	"github.com/tranhn/khtn/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	profileSvc *profile.Service
	stats      profile.Stats
	name       string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the app services.
func New(backend llm.Provider, profileSvc *profile.Service, theorySvc *theory.Service, chatSvc *chat.Service, kv store.KV) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LUYỆN TẬP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: exercises.New(backend, theorySvc, profileSvc),
				}
			}
		}},
		{Label: "GIA SƯ AI", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(chatSvc)}
			}
		}},
		{Label: "HỒ SƠ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(profileSvc)}
			}
		}},
		{Label: "CÀI ĐẶT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(kv)}
			}
		}},
		{Label: "THOÁT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		menu:       components.NewMenu(items),
		profileSvc: profileSvc,
	}
	h.refresh()
	if profileSvc != nil {
		// Keep the stats bar current when a quiz or profile edit lands.
		profileSvc.Subscribe(h.refresh)
	}
	return h
}

// refresh reloads the stats shown under the banner.
func (h *HomeScreen) refresh() {
	if h.profileSvc == nil {
		return
	}
	h.stats = h.profileSvc.Stats()
	h.name = h.profileSvc.Profile().Name
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))

	if h.name != "" {
		greeting := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Chào %s! Hôm nay học gì nào?", h.name))
		sections = append(sections, greeting)
	}

	sections = append(sections, h.renderStatsBar())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Trang chủ"
}

// renderStatsBar renders a one-line summary of study stats.
func (h *HomeScreen) renderStatsBar() string {
	value := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := []string{
		value.Render(fmt.Sprintf("%d", h.stats.Solved)) + label.Render(" bài đã làm"),
		value.Render(fmt.Sprintf("%.1f", h.stats.AverageScore())) + label.Render(" điểm TB"),
		value.Render(fmt.Sprintf("%d", h.stats.Streak)) + label.Render(" ngày liên tiếp"),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(parts, "   │   "))
}
