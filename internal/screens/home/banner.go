package home

import (
	"charm.land/lipgloss/v2"

	"github.com/tranhn/khtn/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗██╗  ██╗████████╗███╗   ██╗
 ██║ ██╔╝██║  ██║╚══██╔══╝████╗  ██║
 █████╔╝ ███████║   ██║   ██╔██╗ ██║
 ██╔═██╗ ██╔══██║   ██║   ██║╚██╗██║
 ██║  ██╗██║  ██║   ██║   ██║ ╚████║
 ╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═══╝`

const bannerCompact = "K H T N"

const bannerTagline = "Khoa học Tự nhiên THCS"

// RenderBanner returns the KHTN banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(bannerTagline)

	if width < 44 {
		return style.Render(bannerCompact) + "\n" + tagline
	}
	return style.Render(bannerArt) + "\n" + tagline
}
