package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"memberadmin/internal/members"
)

// Column widths. Name and email grow with the terminal.
const (
	checkboxWidth = 4
	idWidth       = 6
	roleWidth     = 10
	minNameWidth  = 16
	minEmailWidth = 24
)

// TableRenderer renders the member table
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

type columnWidths struct {
	id, name, email, role int
}

func (tr *TableRenderer) widths(termWidth int, showID bool) columnWidths {
	w := columnWidths{name: minNameWidth, email: minEmailWidth, role: roleWidth}
	if showID {
		w.id = idWidth
	}

	// 2 for the cursor marker, 4 for the main container padding
	avail := termWidth - 6 - checkboxWidth - w.id - w.role
	if extra := avail - w.name - w.email; extra > 0 {
		w.name += extra * 2 / 5
		w.email += extra - extra*2/5
	}
	return w
}

// RenderTable renders the header, the rows of the page and the footer
func (tr *TableRenderer) RenderTable(state ViewState) string {
	w := tr.widths(state.Width, state.ShowIDColumn)
	var lines []string

	lines = append(lines, tr.renderHeader(state, w))
	for i, row := range state.Page.Rows {
		lines = append(lines, tr.renderRow(state, row, i == state.Cursor, w))
	}
	lines = append(lines, "")
	lines = append(lines, tr.renderFooter(state.Page))

	return strings.Join(lines, "\n")
}

func (tr *TableRenderer) renderHeader(state ViewState, w columnWidths) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(cell(checkbox(state.Page.AllVisibleSelected), checkboxWidth))
	if w.id > 0 {
		b.WriteString(cell("ID", w.id))
	}
	b.WriteString(cell("Name", w.name))
	b.WriteString(cell("Email", w.email))
	b.WriteString(cell("Role", w.role))
	return tr.styles.Header.Render(b.String())
}

func (tr *TableRenderer) renderRow(state ViewState, row members.Row, isCursor bool, w columnWidths) string {
	marker := "  "
	if isCursor {
		marker = tr.styles.Cursor.Render("> ")
	}

	name := cell(row.Name, w.name)
	email := cell(row.Email, w.email)
	if row.Editing && row.ID == state.EditingID {
		name = tr.editCell(state.EditName, state.EditField == "name", w.name)
		email = tr.editCell(state.EditEmail, state.EditField == "email", w.email)
	} else if row.Editing {
		name = tr.styles.EditCell.Render(name)
		email = tr.styles.EditCell.Render(email)
	}

	role := row.Member.ExtraString("role")
	roleCell := lipgloss.NewStyle().Foreground(lipgloss.Color(RoleColor(role))).Render(cell(role, w.role))

	var b strings.Builder
	b.WriteString(cell(checkbox(row.Selected), checkboxWidth))
	if w.id > 0 {
		b.WriteString(cell(row.ID, w.id))
	}
	b.WriteString(name)
	b.WriteString(email)
	b.WriteString(roleCell)

	line := b.String()
	if row.Selected {
		line = tr.styles.SelectionBg.Render(line)
	}
	return marker + line
}

func (tr *TableRenderer) editCell(inputView string, focused bool, width int) string {
	style := tr.styles.EditCell
	if focused {
		style = style.Underline(true)
	}
	return style.Render(cell(inputView, width))
}

func (tr *TableRenderer) renderFooter(page members.Page) string {
	prev := tr.styles.Button.Render("< Prev")
	if !page.HasPrev {
		prev = tr.styles.Dim.Render("< Prev")
	}
	next := tr.styles.Button.Render("Next >")
	if !page.HasNext {
		next = tr.styles.Dim.Render("Next >")
	}

	del := tr.styles.ButtonDanger.Render(fmt.Sprintf("Delete Selected (%d)", page.SelectedCount))
	if !page.CanBulkDelete {
		del = tr.styles.Dim.Render("Delete Selected (0)")
	}

	return fmt.Sprintf("%s  %s  Page %d of %d  %s", del, prev, page.Page, page.TotalPages, next)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// cell pads or truncates s to width, leaving one space of gutter
func cell(s string, width int) string {
	if width <= 1 {
		return ""
	}
	if lipgloss.Width(s) > width-1 {
		s = truncate(s, width-1)
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// truncate cuts s to at most width display columns
func truncate(s string, width int) string {
	s = StripANSI(s)
	if width <= 1 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "…")
}
