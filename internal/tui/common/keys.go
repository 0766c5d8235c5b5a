package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the screens react to.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Focus     key.Binding

	// list
	Filter    key.Binding
	SortKey   key.Binding
	SortOrder key.Binding

	// gallery
	NextPage    key.Binding
	PrevPage    key.Binding
	ToggleGenre key.Binding
	ClearGenres key.Binding
	PrevCard    key.Binding
	NextCard    key.Binding

	// detail
	Previous key.Binding
	Next     key.Binding
	Open     key.Binding
	Copy     key.Binding
	Retry    key.Binding

	// home
	List    key.Binding
	Gallery key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open details")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "go back")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch focus")),

	Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter this page")),
	SortKey:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort key")),
	SortOrder: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "flip sort order")),

	NextPage:    key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n/pgdn", "next page")),
	PrevPage:    key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p/pgup", "previous page")),
	ToggleGenre: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle genre")),
	ClearGenres: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear genres")),
	PrevCard:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous card")),
	NextCard:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next card")),

	Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous movie")),
	Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next movie")),
	Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open on TMDB")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy TMDB link")),
	Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),

	List:    key.NewBinding(key.WithKeys("s", "1"), key.WithHelp("s", "search list")),
	Gallery: key.NewBinding(key.WithKeys("g", "2"), key.WithHelp("g", "browse gallery")),
}
