package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered over the main content. Base
// lines covered by the popup are replaced; the rest are dimmed.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")
	if len(popupLines) > height {
		popupLines = popupLines[:height]
	}

	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	pad := strings.Repeat(" ", x)
	for i, line := range popupLines {
		baseLines[y+i] = pad + line
	}
	return strings.Join(baseLines[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		if line != "" {
			lines[i] = gray.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes color and style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
