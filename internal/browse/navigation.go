package browse

// NavContext is the ordered id list of the last rendered result set. It is
// carried from a list screen into the detail screen and forwarded
// unchanged on every prev/next step.
type NavContext struct {
	ids []int
}

// NewNavContext copies ids into a context.
func NewNavContext(ids []int) NavContext {
	if len(ids) == 0 {
		return NavContext{}
	}
	cp := make([]int, len(ids))
	copy(cp, ids)
	return NavContext{ids: cp}
}

// IDs returns a copy of the ordered ids.
func (n NavContext) IDs() []int {
	if len(n.ids) == 0 {
		return nil
	}
	cp := make([]int, len(n.ids))
	copy(cp, n.ids)
	return cp
}

// Len is the number of ids.
func (n NavContext) Len() int {
	return len(n.ids)
}

// IndexOf returns the position of id, or -1.
func (n NavContext) IndexOf(id int) int {
	for i, v := range n.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Navigator is a detail target positioned inside a NavContext.
type Navigator struct {
	target int
	nav    NavContext
}

// NewNavigator targets id within nav.
func NewNavigator(id int, nav NavContext) Navigator {
	return Navigator{target: id, nav: nav}
}

// Target is the id currently shown.
func (n Navigator) Target() int {
	return n.target
}

// Context is the carried id list.
func (n Navigator) Context() NavContext {
	return n.nav
}

// Position returns the 1-based position of the target and the list length,
// or 0 when the target is not in the list.
func (n Navigator) Position() (int, int) {
	return n.nav.IndexOf(n.target) + 1, n.nav.Len()
}

// HasPrevious is true when the target is in the list and not first.
func (n Navigator) HasPrevious() bool {
	return n.nav.IndexOf(n.target) > 0
}

// HasNext is true when the target is in the list and not last.
func (n Navigator) HasNext() bool {
	idx := n.nav.IndexOf(n.target)
	return idx >= 0 && idx < n.nav.Len()-1
}

// Previous re-targets to the preceding id, keeping the same list.
func (n Navigator) Previous() (Navigator, bool) {
	if !n.HasPrevious() {
		return n, false
	}
	idx := n.nav.IndexOf(n.target)
	return Navigator{target: n.nav.ids[idx-1], nav: n.nav}, true
}

// Next re-targets to the following id, keeping the same list.
func (n Navigator) Next() (Navigator, bool) {
	if !n.HasNext() {
		return n, false
	}
	idx := n.nav.IndexOf(n.target)
	return Navigator{target: n.nav.ids[idx+1], nav: n.nav}, true
}
