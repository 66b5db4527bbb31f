package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It also feeds the short help line.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	Select     key.Binding
	SelectAll  key.Binding
	Edit       key.Binding
	Delete     key.Binding
	BulkDelete key.Binding
	Search     key.Binding
	Clear      key.Binding
	Detail     key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		FirstPage:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		LastPage:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		Select:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		BulkDelete: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Detail:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "details")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.Edit, k.Delete, k.BulkDelete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.FirstPage, k.LastPage},
		{k.Select, k.SelectAll, k.Edit, k.Delete, k.BulkDelete},
		{k.Search, k.Clear, k.Detail, k.Help, k.Quit},
	}
}
