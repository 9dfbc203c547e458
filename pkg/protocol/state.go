package protocol

import (
	"strings"

	"github.com/go-drift/accessbridge/pkg/semantics"
)

// State is a native protocol state.
type State int

const (
	StateInvalid State = iota
	StateActive
	StateBusy
	StateChecked
	StateCollapsed
	StateDefunct
	StateEditable
	StateEnabled
	StateExpandable
	StateExpanded
	StateFocusable
	StateFocused
	StateInvalidEntry
	StateMultiLine
	StateMultiSelectable
	StatePressed
	StateRequired
	StateResizable
	StateSelectable
	StateSelected
	StateSensitive
	StateShowing
	StateSingleLine
	StateSupportsAutocompletion
	StateVisible

	stateCount
)

var stateNames = [...]string{
	"invalid", "active", "busy", "checked", "collapsed", "defunct", "editable",
	"enabled", "expandable", "expanded", "focusable", "focused",
	"invalid-entry", "multi-line", "multiselectable", "pressed", "required",
	"resizable", "selectable", "selected", "sensitive", "showing",
	"single-line", "supports-autocompletion", "visible",
}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return "invalid"
	}
	return stateNames[s]
}

// StateSet is a set of native states.
type StateSet uint64

// NewStateSet returns a set containing states.
func NewStateSet(states ...State) StateSet {
	var set StateSet
	for _, s := range states {
		set = set.Add(s)
	}
	return set
}

// Add returns set with s added.
func (set StateSet) Add(s State) StateSet {
	return set | 1<<uint(s)
}

// Remove returns set with s removed.
func (set StateSet) Remove(s State) StateSet {
	return set &^ (1 << uint(s))
}

// Contains reports whether s is in the set.
func (set StateSet) Contains(s State) bool {
	return set&(1<<uint(s)) != 0
}

// Union returns the states present in either set.
func (set StateSet) Union(o StateSet) StateSet {
	return set | o
}

// States lists the members in ascending order.
func (set StateSet) States() []State {
	var out []State
	for s := State(0); s < stateCount; s++ {
		if set.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}

func (set StateSet) String() string {
	states := set.States()
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// stateMapping ties one semantic flag to its protocol states. When inverted
// is set, the protocol states are present exactly when the semantic flag is
// absent. primary is the state consulted for the reverse mapping.
type stateMapping struct {
	flag     semantics.State
	primary  State
	extra    []State
	inverted bool
}

var stateTable = []stateMapping{
	{flag: semantics.StateSelected, primary: StateSelected},
	{flag: semantics.StateFocused, primary: StateFocused},
	{flag: semantics.StatePressed, primary: StatePressed},
	{flag: semantics.StateChecked, primary: StateChecked},
	{flag: semantics.StateExpanded, primary: StateExpanded, extra: []State{StateExpandable}},
	{flag: semantics.StateCollapsed, primary: StateCollapsed, extra: []State{StateExpandable}},
	{flag: semantics.StateBusy, primary: StateBusy},
	{flag: semantics.StateReadOnly, primary: StateEditable, inverted: true},
	{flag: semantics.StateInvisible, primary: StateVisible, inverted: true},
	{flag: semantics.StateOffscreen, primary: StateShowing, inverted: true},
	{flag: semantics.StateSizeable, primary: StateResizable},
	{flag: semantics.StateDisabled, primary: StateEnabled, extra: []State{StateSensitive}, inverted: true},
	{flag: semantics.StateFocusable, primary: StateFocusable},
	{flag: semantics.StateSelectable, primary: StateSelectable},
	{flag: semantics.StateMultiSelectable, primary: StateMultiSelectable},
	{flag: semantics.StateActive, primary: StateActive},
	{flag: semantics.StateSingleLine, primary: StateSingleLine},
	{flag: semantics.StateMultiLine, primary: StateMultiLine},
	{flag: semantics.StateRequired, primary: StateRequired},
	{flag: semantics.StateInvalidEntry, primary: StateInvalidEntry},
	{flag: semantics.StateSupportsAutocompletion, primary: StateSupportsAutocompletion},
}

// DroppedStates are semantic flags with no protocol equivalent.
const DroppedStates = semantics.StateHotTracked | semantics.StateLinked

// TranslateStates converts semantic flags to protocol states.
// Flags in DroppedStates contribute nothing.
func TranslateStates(s semantics.State) StateSet {
	var set StateSet
	for _, m := range stateTable {
		if s.Has(m.flag) == m.inverted {
			continue
		}
		set = set.Add(m.primary)
		for _, e := range m.extra {
			set = set.Add(e)
		}
	}
	return set
}

// ReverseStates converts protocol states back to semantic flags using each
// mapping's primary state.
func ReverseStates(set StateSet) semantics.State {
	var s semantics.State
	for _, m := range stateTable {
		if set.Contains(m.primary) != m.inverted {
			s = s.Set(m.flag)
		}
	}
	return s
}

// SuppressedStates returns the protocol states that inverted flags in s
// rule out. A listener asserting read-only removes editable even when the
// inherited set carried it.
func SuppressedStates(s semantics.State) StateSet {
	var set StateSet
	for _, m := range stateTable {
		if !m.inverted || !s.Has(m.flag) {
			continue
		}
		set = set.Add(m.primary)
		for _, e := range m.extra {
			set = set.Add(e)
		}
	}
	return set
}
