package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberadmin/internal/domain"
	"memberadmin/internal/members"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "a", truncate("abc", 1))
}

func TestCellPadsToWidth(t *testing.T) {
	assert.Equal(t, 8, lipgloss.Width(cell("ok", 8)))
	assert.Equal(t, 8, lipgloss.Width(cell("a very long value", 8)))
	assert.Equal(t, "", cell("x", 1))
}

func TestCellWideRunes(t *testing.T) {
	name := "山田太郎山田太郎山田太郎山田太郎山田太郎"

	var out string
	require.NotPanics(t, func() { out = cell(name, 16) })
	assert.Equal(t, 16, lipgloss.Width(out))
	assert.True(t, strings.HasPrefix(out, "山田太郎"))
	assert.Contains(t, out, "…")

	// an odd column count cannot fit another wide rune
	assert.LessOrEqual(t, lipgloss.Width(truncate(name, 6)), 6)
	assert.Equal(t, 7, lipgloss.Width(cell("😀😀😀😀😀", 7)))
}

func TestRenderTableWideRunes(t *testing.T) {
	s := members.NewState()
	s.Load([]domain.Member{{ID: "1", Name: "山田太郎山田太郎山田太郎山田太郎山田太郎山田太郎", Email: "🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂🙂@example.com"}})

	r := NewRenderer()
	assert.NotPanics(t, func() {
		r.Render(ViewState{Width: 60, Height: 20, Page: s.View()})
	})
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[1;31mhello\x1b[0m"))
}

func testPage() members.Page {
	s := members.NewState()
	s.Load([]domain.Member{
		{ID: "1", Name: "Ada", Email: "ada@example.com", Extra: map[string]any{"role": "admin"}},
		{ID: "2", Name: "Bo", Email: "bo@example.com", Extra: map[string]any{"role": "member"}},
	})
	s.ToggleRow("2")
	return s.View()
}

func TestRenderTable(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.Render(ViewState{Width: 100, Height: 30, Page: testPage()}))

	assert.Contains(t, out, "Member Admin")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "bo@example.com")
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "Delete Selected (1)")
}

func TestRenderStates(t *testing.T) {
	r := NewRenderer()

	out := StripANSI(r.Render(ViewState{Width: 80, Height: 20, Loading: true, Page: members.NewState().View()}))
	assert.Contains(t, out, "Loading members...")

	out = StripANSI(r.Render(ViewState{Width: 80, Height: 20, LoadError: "boom", Page: members.NewState().View()}))
	assert.Contains(t, out, "No members loaded")
	assert.Contains(t, out, "boom")
}

func TestPopupOverlayKeepsHeight(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	base := strings.Repeat("background line\n", 19) + "background line"

	out := pr.RenderPopupOverlay(base, "popup body", 20, 60, lipgloss.NewStyle())
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 20)
	assert.Contains(t, StripANSI(out), "popup body")
}
