package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"memberadmin/internal/domain"
)

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	kind    string // "help" or "detail"
	content string
	err     error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, k/j", "Move cursor"},
		{"←/→, h/l", "Previous/next page"},
		{"PgUp/PgDn", "Previous/next page"},
		{"g/G, Home/End", "First/last page"},
	}},
	{"Selection", []helpEntry{
		{"Space", "Toggle selection"},
		{"a", "Select/deselect all on page"},
	}},
	{"Member Actions", []helpEntry{
		{"e, Enter", "Edit name and email"},
		{"d", "Delete member"},
		{"D", "Delete selected members"},
		{"i", "Show all fields"},
	}},
	{"Editing", []helpEntry{
		{"Tab", "Switch field"},
		{"Enter", "Save and stop editing"},
		{"Esc", "Stop editing (typed values are kept)"},
	}},
	{"Search", []helpEntry{
		{"/", "Search all fields"},
		{"Enter", "Keep query"},
		{"Esc", "Clear query"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q, Ctrl+C", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Member Admin Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// renderHelpContent renders the help popup window for the given height
func (r *HelpRenderer) renderHelpContent(height int, scrollOffset int) string {
	content := r.RenderHelpContentPlain()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Calculate visible window (account for popup border and padding)
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	if totalLines <= visibleHeight {
		return content
	}

	// Ensure scroll offset is valid
	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	endLine := scrollOffset + visibleHeight
	visibleLines := append([]string(nil), lines[scrollOffset:endLine]...)

	// Add scroll indicators
	scrollStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visibleLines[0] = scrollStyle.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = scrollStyle.Render("↓ (more below)")
	}

	return strings.Join(visibleLines, "\n")
}

// RenderMemberDetail lists every field of a member, extras in key order
func RenderMemberDetail(r domain.Member) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	keys := append([]string{"id", domain.FieldName, domain.FieldEmail}, r.ExtraKeys()...)
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}

	values := r.Values()
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Member %s", r.ID)))
	b.WriteString("\n\n")
	for i, k := range keys {
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, k))
		b.WriteString(fmt.Sprintf("  %s  %s", label, values[i]))
		if i < len(keys)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PagerOps runs the ov pager over the Bubble Tea screen
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *PagerOps) Available() bool {
	return p != nil && p.program != nil
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if !p.Available() {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
