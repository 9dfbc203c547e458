// Package capability decides which optional protocol interfaces a node
// exposes for a given role.
package capability

import (
	"strings"

	"github.com/go-drift/accessbridge/pkg/semantics"
)

// Capability is one optional protocol interface.
type Capability uint8

// Capabilities in the fixed order used for composite type names.
const (
	Action Capability = iota
	EditableText
	Hypertext
	Selection
	Table
	Text
	Value

	capabilityCount
)

var capabilityNames = [...]string{
	"Action", "EditableText", "Hypertext", "Selection", "Table", "Text", "Value",
}

// String returns the interface name, which is also its type-name suffix.
func (c Capability) String() string {
	if c >= capabilityCount {
		return "Unknown"
	}
	return capabilityNames[c]
}

// All lists every optional capability in suffix order.
func All() []Capability {
	out := make([]Capability, capabilityCount)
	for i := range out {
		out[i] = Capability(i)
	}
	return out
}

// Parse looks up a capability by name, case-insensitively.
func Parse(name string) (Capability, bool) {
	for i, n := range capabilityNames {
		if strings.EqualFold(n, name) {
			return Capability(i), true
		}
	}
	return 0, false
}

// Set is an immutable set of optional capabilities.
type Set uint8

// Empty has no optional capability.
const Empty Set = 0

// Full has every optional capability.
const Full Set = 1<<capabilityCount - 1

// Of returns the set holding caps.
func Of(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s Set) Has(c Capability) bool {
	return s&(1<<c) != 0
}

// With returns s plus c.
func (s Set) With(c Capability) Set {
	return s | 1<<c
}

// Each calls fn for every member in suffix order.
func (s Set) Each(fn func(Capability)) {
	for c := Capability(0); c < capabilityCount; c++ {
		if s.Has(c) {
			fn(c)
		}
	}
}

// Members lists the capabilities in suffix order.
func (s Set) Members() []Capability {
	var out []Capability
	s.Each(func(c Capability) { out = append(out, c) })
	return out
}

// Len returns the number of capabilities in the set.
func (s Set) Len() int {
	n := 0
	s.Each(func(Capability) { n++ })
	return n
}

func (s Set) String() string {
	if s == Empty {
		return "none"
	}
	parts := make([]string, 0, capabilityCount)
	s.Each(func(c Capability) { parts = append(parts, c.String()) })
	return strings.Join(parts, "|")
}

// Always-present interfaces. They are attached to every native type and
// never appear in a Set.
const (
	InterfaceObject    = "Object"
	InterfaceComponent = "Component"
)

var roleSets = [capabilityCount]map[semantics.Role]struct{}{
	Action: roles(
		semantics.RoleCheckButton, semantics.RoleComboBox, semantics.RoleLink,
		semantics.RoleMenuItem, semantics.RolePushButton, semantics.RoleRadioButton,
		semantics.RoleSplitButton, semantics.RoleSpinButton,
		semantics.RoleCheckMenuItem, semantics.RoleRadioMenuItem,
	),
	EditableText: roles(
		semantics.RoleComboBox, semantics.RoleDocument, semantics.RoleParagraph,
		semantics.RoleText,
	),
	Hypertext: roles(
		semantics.RoleDocument, semantics.RoleHeading, semantics.RoleLink,
		semantics.RoleParagraph, semantics.RoleText,
	),
	Selection: roles(
		semantics.RoleComboBox, semantics.RoleList, semantics.RoleTabFolder,
		semantics.RoleTable, semantics.RoleTree,
	),
	Table: roles(semantics.RoleTable, semantics.RoleTree),
	Text: roles(
		semantics.RoleComboBox, semantics.RoleDocument, semantics.RoleFooter,
		semantics.RoleHeader, semantics.RoleHeading, semantics.RoleLabel,
		semantics.RoleLink, semantics.RolePage, semantics.RoleParagraph,
		semantics.RoleSection, semantics.RoleSpinButton, semantics.RoleText,
	),
	Value: roles(
		semantics.RoleProgressBar, semantics.RoleScrollBar, semantics.RoleSlider,
		semantics.RoleSpinButton,
	),
}

func roles(rs ...semantics.Role) map[semantics.Role]struct{} {
	m := make(map[semantics.Role]struct{}, len(rs))
	for _, r := range rs {
		m[r] = struct{}{}
	}
	return m
}

// Resolve returns the optional capabilities for role.
//
// RoleUnspecified means no listener supplied a role; every capability is
// exposed. A role that belongs to no table yields Empty.
func Resolve(role semantics.Role) Set {
	if role == semantics.RoleUnspecified {
		return Full
	}
	var s Set
	for c := Capability(0); c < capabilityCount; c++ {
		if _, ok := roleSets[c][role]; ok {
			s = s.With(c)
		}
	}
	return s
}

// Interfaces lists the interface names a native type with set s implements,
// starting with the always-present ones.
func Interfaces(s Set) []string {
	out := []string{InterfaceObject, InterfaceComponent}
	s.Each(func(c Capability) { out = append(out, c.String()) })
	return out
}
