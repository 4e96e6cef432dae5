package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Archive   key.Binding
	Favorite  key.Binding
	New       key.Binding
	LoadMore  key.Binding
	Sort      key.Binding
	NextFilt  key.Binding
	PrevFilt  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Form keys.
	Submit    key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	NextField key.Binding
	PrevField key.Binding

	editing bool
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Open:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Archive:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive")),
		Favorite:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		LoadMore:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
		Sort:      key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "sort")),
		NextFilt:  key.NewBinding(key.WithKeys("]", "l"), key.WithHelp("]", "next filter")),
		PrevFilt:  key.NewBinding(key.WithKeys("[", "h"), key.WithHelp("[", "prev filter")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	}
}

// ShortHelp switches to the form bindings while an edit form has focus.
func (k keyMap) ShortHelp() []key.Binding {
	if k.editing {
		return []key.Binding{k.Submit, k.Cancel, k.NextField, k.Delete}
	}
	return []key.Binding{k.Down, k.Up, k.Open, k.Archive, k.Favorite, k.New, k.Sort, k.NextFilt, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.LoadMore},
		{k.Archive, k.Favorite, k.New},
		{k.Sort, k.NextFilt, k.PrevFilt, k.Quit},
		{k.Submit, k.Cancel, k.NextField, k.PrevField, k.Delete},
	}
}
