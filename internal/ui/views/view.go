package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memberadmin/internal/members"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Page         members.Page
	Cursor       int
	ShowIDColumn bool

	Loading     bool
	SpinnerView string
	LoadError   string
	Source      string

	// Edit mode inputs for the member being edited
	EditingID string
	EditName  string
	EditEmail string
	EditField string

	StatusMessage string
	TextInput     string // prompt line for the active input mode
	InputMode     string
	ShortHelp     string

	ShowHelp    bool
	HelpContent string
	ShowInfo    bool
	InfoContent string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tableRender *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		tableRender: NewTableRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	// Prompt for the active input mode
	if state.TextInput != "" {
		if state.InputMode == "bulk-delete-confirm" {
			content.WriteString(r.styles.Confirm.Render(state.TextInput))
		} else {
			content.WriteString(state.TextInput)
		}
		content.WriteString("\n\n")
	}

	// Main content
	var mainContent string
	switch {
	case state.Loading:
		mainContent = r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading members...", state.SpinnerView))
	case state.Page.TotalCount == 0 && state.LoadError != "":
		mainContent = r.styles.Dim.Render("No members loaded")
	case state.Page.TotalCount == 0:
		mainContent = r.styles.Dim.Render("No members")
	case state.Page.FilteredCount == 0:
		mainContent = r.styles.Dim.Render(fmt.Sprintf("No members match %q", state.Page.Query)) +
			"\n\n" + r.tableRender.renderFooter(state.Page)
	default:
		mainContent = r.tableRender.RenderTable(state)
	}
	content.WriteString(mainContent)

	// Status line
	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	// Calculate help text (shown at bottom when no popups are visible)
	helpText := ""
	if !state.ShowHelp && !state.ShowInfo {
		helpText = r.styles.Help.Render("Press ? for help")
		if state.ShortHelp != "" {
			helpText = state.ShortHelp + "\n" + helpText
		}
	}

	// If we have help text, add padding to push it to the bottom
	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		helpLines := strings.Count(helpText, "\n") + 1
		paddingNeeded := availableLines - currentLines - helpLines
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(helpText)
	}

	// Apply main container style
	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderTitleLine renders the logo with right-aligned counts and the active query
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("Member Admin")

	var indicators []string
	switch {
	case state.Loading:
		indicators = append(indicators, fmt.Sprintf("%s Loading", state.SpinnerView))
	case state.Page.Query != "":
		indicators = append(indicators, fmt.Sprintf("%d of %d members", state.Page.FilteredCount, state.Page.TotalCount))
	default:
		indicators = append(indicators, fmt.Sprintf("%d members", state.Page.TotalCount))
	}
	if state.Page.SelectedCount > 0 {
		indicators = append(indicators, fmt.Sprintf("%d selected", state.Page.SelectedCount))
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
	if state.Page.Query != "" && state.InputMode != "search" {
		rightContent = fmt.Sprintf("%s  %s", rightContent, r.styles.Filter.Render(fmt.Sprintf("[Search: %s]", state.Page.Query)))
	}

	// Use a default width if state.Width is not set
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)

	if paddingWidth > 0 {
		return fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
	}
	// If not enough space, just show with minimal spacing
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.Status.Render(state.StatusMessage)
	}
	if state.LoadError != "" {
		return r.styles.StatusError.Render(state.LoadError)
	}
	return ""
}
