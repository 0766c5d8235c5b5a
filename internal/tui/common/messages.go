package common

import (
	"github.com/justchokingaround/reel/internal/browse"
)

// This file contains custom tea.Msg types for communication between components.

// Screen identifies a top-level view.
type Screen int

const (
	HomeScreen Screen = iota
	ListScreen
	GalleryScreen
	DetailScreen
)

func (s Screen) String() string {
	switch s {
	case ListScreen:
		return "list"
	case GalleryScreen:
		return "gallery"
	case DetailScreen:
		return "detail"
	default:
		return "home"
	}
}

// ParseScreen maps a config or flag value to a start screen.
func ParseScreen(s string) (Screen, bool) {
	switch s {
	case "home", "":
		return HomeScreen, true
	case "list":
		return ListScreen, true
	case "gallery":
		return GalleryScreen, true
	}
	return HomeScreen, false
}

// GoToHomeMsg switches to the home view.
type GoToHomeMsg struct{}

// GoToListMsg switches to the search list view.
type GoToListMsg struct{}

// GoToGalleryMsg switches to the gallery view.
type GoToGalleryMsg struct{}

// BackMsg returns from the detail view to the screen that opened it.
type BackMsg struct{}

// OpenDetailMsg opens the detail view for ID. Nav is the ordered id list of
// the screen that sent it; From is that screen.
type OpenDetailMsg struct {
	ID   int
	Nav  browse.NavContext
	From Screen
}

// NavigateDetailMsg re-targets the open detail view, carrying Nav forward.
type NavigateDetailMsg struct {
	ID  int
	Nav browse.NavContext
}

// CardStepMsg asks the gallery to move its selection by Delta cards.
type CardStepMsg struct {
	Delta int
}

// CopyLinkMsg copies URL to the clipboard.
type CopyLinkMsg struct {
	URL string
}

// OpenBrowserMsg opens URL in the default browser.
type OpenBrowserMsg struct {
	URL string
}

// StatusMsg shows a transient notification in the footer.
type StatusMsg struct {
	Text string
}
