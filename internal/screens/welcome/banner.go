package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventures/internal/ui/theme"
)

const bannerArt = `┌┬┐┌─┐┌┬┐┬ ┬  ┌─┐┌┬┐┬  ┬┌─┐┌┐┌┌┬┐┬ ┬┬─┐┌─┐┌─┐
│││├─┤ │ ├─┤  ├─┤ ││└┐┌┘├┤ │││ │ │ │├┬┘├┤ └─┐
┴ ┴┴ ┴ ┴ ┴ ┴  ┴ ┴─┴┘ └┘ └─┘┘└┘ ┴ └─┘┴└─└─┘└─┘`

const bannerCompact = "MATH ADVENTURES"

// RenderBanner returns the title banner styled in the primary color, with
// a plain fallback for terminals narrower than 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
