package accessibility_test

import (
	"fmt"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	"github.com/go-drift/accessbridge/pkg/semantics"
)

// namer answers naming queries with fixed strings; empty fields leave the
// seeded value alone.
type namer struct {
	accessibility.NamingAdapter
	name, description, help, shortcut string
}

func (l *namer) GetName(e *accessibility.NamingEvent) {
	if l.name != "" {
		e.Result = l.name
	}
}

func (l *namer) GetDescription(e *accessibility.NamingEvent) {
	if l.description != "" {
		e.Result = l.description
	}
}

func (l *namer) GetHelp(e *accessibility.NamingEvent) {
	e.Result = l.help
}

func (l *namer) GetKeyboardShortcut(e *accessibility.NamingEvent) {
	e.Result = l.shortcut
}

// childNamer names lightweight children after their id.
type childNamer struct {
	accessibility.NamingAdapter
}

func (childNamer) GetName(e *accessibility.NamingEvent) {
	if e.ChildID >= 0 {
		e.Result = fmt.Sprintf("item %d", e.ChildID)
	}
}

// control routes each control query to an optional hook.
type control struct {
	onRole      func(e *accessibility.ControlEvent)
	onState     func(e *accessibility.ControlEvent)
	onChildren  func(e *accessibility.ControlEvent)
	onCount     func(e *accessibility.ControlEvent)
	onLocation  func(e *accessibility.ControlEvent)
	onAtPoint   func(e *accessibility.ControlEvent)
	onFocus     func(e *accessibility.ControlEvent)
	onSelection func(e *accessibility.ControlEvent)
	onValue     func(e *accessibility.ControlEvent)
	onDefault   func(e *accessibility.ControlEvent)
}

func call(f func(*accessibility.ControlEvent), e *accessibility.ControlEvent) {
	if f != nil {
		f(e)
	}
}

func (c *control) GetChildAtPoint(e *accessibility.ControlEvent)  { call(c.onAtPoint, e) }
func (c *control) GetLocation(e *accessibility.ControlEvent)      { call(c.onLocation, e) }
func (c *control) GetChildCount(e *accessibility.ControlEvent)    { call(c.onCount, e) }
func (c *control) GetChildren(e *accessibility.ControlEvent)      { call(c.onChildren, e) }
func (c *control) GetDefaultAction(e *accessibility.ControlEvent) { call(c.onDefault, e) }
func (c *control) GetFocus(e *accessibility.ControlEvent)         { call(c.onFocus, e) }
func (c *control) GetRole(e *accessibility.ControlEvent)          { call(c.onRole, e) }
func (c *control) GetSelection(e *accessibility.ControlEvent)     { call(c.onSelection, e) }
func (c *control) GetState(e *accessibility.ControlEvent)         { call(c.onState, e) }
func (c *control) GetValue(e *accessibility.ControlEvent)         { call(c.onValue, e) }

func withRole(r semantics.Role) *control {
	return &control{onRole: func(e *accessibility.ControlEvent) { e.Role = r }}
}

func withLocation(x, y, w, h int) *control {
	return &control{onLocation: func(e *accessibility.ControlEvent) {
		e.X, e.Y, e.Width, e.Height = x, y, w, h
	}}
}

// lightweightChildren answers GetChildren with the ids in *ids.
func lightweightChildren(ids *[]int) *control {
	return &control{onChildren: func(e *accessibility.ControlEvent) {
		if e.ChildID != accessibility.ChildIDSelf {
			return
		}
		e.Children = make([]accessibility.Child, len(*ids))
		for i, id := range *ids {
			e.Children[i] = accessibility.ChildID(id)
		}
	}}
}

// textSource serves range queries from text and leaves boundary queries to
// the default engine.
type textSource struct {
	accessibility.TextExtendedAdapter
	text string
}

func (s *textSource) GetText(e *accessibility.TextExtendedEvent) {
	if e.Boundary != nil {
		return
	}
	runes := []rune(s.text)
	end := e.End
	if end < 0 || end > len(runes) {
		end = len(runes)
	}
	start := min(max(e.Start, 0), end)
	e.Result = string(runes[start:end])
}

// panicky panics on every naming query.
type panicky struct {
	accessibility.NamingAdapter
}

func (panicky) GetName(*accessibility.NamingEvent) {
	panic("listener exploded")
}
