package semantics

import "strings"

// State is a bitmask of semantic state flags.
type State uint32

const (
	StateSelected State = 1 << iota
	StateFocused
	StatePressed
	StateChecked
	StateExpanded
	StateCollapsed
	StateHotTracked
	StateBusy
	StateReadOnly
	StateInvisible
	StateOffscreen
	StateSizeable
	StateLinked
	StateDisabled
	StateFocusable
	StateSelectable
	StateMultiSelectable
	StateActive
	StateSingleLine
	StateMultiLine
	StateRequired
	StateInvalidEntry
	StateSupportsAutocompletion

	stateEnd
)

// StateNormal is the empty state set.
const StateNormal State = 0

var stateNames = [...]string{
	"selected", "focused", "pressed", "checked", "expanded", "collapsed",
	"hot-tracked", "busy", "read-only", "invisible", "offscreen", "sizeable",
	"linked", "disabled", "focusable", "selectable", "multi-selectable",
	"active", "single-line", "multi-line", "required", "invalid-entry",
	"supports-autocompletion",
}

// Has reports whether all bits in flag are set.
func (s State) Has(flag State) bool {
	return s&flag == flag
}

// Set returns s with flag added.
func (s State) Set(flag State) State {
	return s | flag
}

// Clear returns s with flag removed.
func (s State) Clear(flag State) State {
	return s &^ flag
}

// Each calls fn for every single-bit flag set in s, lowest bit first.
func (s State) Each(fn func(State)) {
	for bit := State(1); bit < stateEnd; bit <<= 1 {
		if s&bit != 0 {
			fn(bit)
		}
	}
}

// AllStates returns every single-bit state flag.
func AllStates() []State {
	var out []State
	for bit := State(1); bit < stateEnd; bit <<= 1 {
		out = append(out, bit)
	}
	return out
}

// String returns the set flags joined with "|", or "normal".
func (s State) String() string {
	if s == StateNormal {
		return "normal"
	}
	var parts []string
	i := 0
	for bit := State(1); bit < stateEnd; bit <<= 1 {
		if s&bit != 0 {
			parts = append(parts, stateNames[i])
		}
		i++
	}
	return strings.Join(parts, "|")
}

// ParseState looks up a single state flag by its kebab-case name.
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(1) << i, true
		}
	}
	return StateNormal, false
}
