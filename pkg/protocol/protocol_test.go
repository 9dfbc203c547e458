package protocol

import (
	"image/color"
	"testing"

	"github.com/go-drift/accessbridge/pkg/semantics"
	"github.com/go-drift/accessbridge/pkg/textbound"
)

func TestTranslateRole(t *testing.T) {
	tests := []struct {
		role semantics.Role
		want Role
		ok   bool
	}{
		{semantics.RolePushButton, RolePushButton, true},
		{semantics.RoleSplitButton, RolePushButton, true},
		{semantics.RoleCheckButton, RoleCheckBox, true},
		{semantics.RoleTree, RoleTreeTable, true},
		{semantics.RoleDocument, RoleDocumentFrame, true},
		{semantics.RoleColumn, RoleInvalid, false},
		{semantics.RoleClock, RoleInvalid, false},
		{semantics.RoleUnspecified, RoleInvalid, false},
	}
	for _, tt := range tests {
		got, ok := TranslateRole(tt.role)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TranslateRole(%v) = (%v, %v), want (%v, %v)", tt.role, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEveryRoleExceptColumnAndClockTranslates(t *testing.T) {
	for _, r := range semantics.Roles() {
		_, ok := TranslateRole(r)
		want := r != semantics.RoleColumn && r != semantics.RoleClock
		if ok != want {
			t.Errorf("TranslateRole(%v) ok = %v, want %v", r, ok, want)
		}
	}
}

func TestTranslateStates(t *testing.T) {
	got := TranslateStates(semantics.StateFocused | semantics.StateExpanded)
	for _, s := range []State{StateFocused, StateExpanded, StateExpandable, StateEditable, StateVisible, StateShowing, StateEnabled, StateSensitive} {
		if !got.Contains(s) {
			t.Errorf("TranslateStates missing %v in %v", s, got)
		}
	}
	if got.Contains(StateCollapsed) {
		t.Errorf("TranslateStates unexpectedly contains collapsed: %v", got)
	}

	disabled := TranslateStates(semantics.StateDisabled | semantics.StateReadOnly)
	for _, s := range []State{StateEnabled, StateSensitive, StateEditable} {
		if disabled.Contains(s) {
			t.Errorf("TranslateStates(disabled|read-only) contains %v", s)
		}
	}
}

func TestDroppedStatesContributeNothing(t *testing.T) {
	base := TranslateStates(semantics.StateNormal)
	with := TranslateStates(DroppedStates)
	if base != with {
		t.Errorf("TranslateStates(dropped) = %v, want %v", with, base)
	}
}

func TestReverseStatesRoundTrip(t *testing.T) {
	for _, s := range semantics.AllStates() {
		if DroppedStates.Has(s) {
			continue
		}
		if got := ReverseStates(TranslateStates(s)); got != s {
			t.Errorf("ReverseStates(TranslateStates(%v)) = %v", s, got)
		}
	}
}

func TestSuppressedStates(t *testing.T) {
	got := SuppressedStates(semantics.StateReadOnly | semantics.StateFocused)
	if got != NewStateSet(StateEditable) {
		t.Errorf("SuppressedStates(read-only|focused) = %v, want [editable]", got)
	}
	got = SuppressedStates(semantics.StateDisabled)
	if !got.Contains(StateEnabled) || !got.Contains(StateSensitive) {
		t.Errorf("SuppressedStates(disabled) = %v, want enabled and sensitive", got)
	}
	if SuppressedStates(semantics.StateNormal) != 0 {
		t.Error("SuppressedStates(normal) should be empty")
	}
}

func TestStateSet(t *testing.T) {
	set := NewStateSet(StateFocused, StateActive).Remove(StateActive)
	if set.Contains(StateActive) || !set.Contains(StateFocused) {
		t.Errorf("set = %v, want [focused]", set)
	}
	if got := set.String(); got != "[focused]" {
		t.Errorf("String() = %q, want %q", got, "[focused]")
	}
}

func TestTranslateRelation(t *testing.T) {
	for _, k := range semantics.RelationKinds() {
		got, ok := TranslateRelation(k)
		if !ok {
			t.Errorf("TranslateRelation(%v) not mapped", k)
			continue
		}
		if got.String() != k.String() {
			t.Errorf("TranslateRelation(%v) = %v", k, got)
		}
	}
}

func TestBoundaryTables(t *testing.T) {
	if got := BoundaryWordEnd.Boundary(); got != (textbound.Boundary{Unit: textbound.Word, Edge: textbound.End}) {
		t.Errorf("BoundaryWordEnd.Boundary() = %v", got)
	}
	if got := TextBoundary(99).Boundary(); got.Unit != textbound.Char {
		t.Errorf("unknown boundary unit = %v, want char", got.Unit)
	}
	if got := GranularityParagraph.Boundary(); got.Unit != textbound.Line {
		t.Errorf("paragraph unit = %v, want line", got.Unit)
	}
}

func TestStyleAttributes(t *testing.T) {
	attrs := StyleAttributes(semantics.TextStyle{
		FontFamily: "Sans",
		FontSize:   12,
		Bold:       true,
		Italic:     true,
		Foreground: color.RGBA{R: 0xff, A: 0xff},
		Underline:  true,
	})
	want := map[string]string{
		AttrFamilyName: "Sans",
		AttrSize:       "12",
		AttrWeight:     "700",
		AttrStyle:      "italic",
		AttrFgColor:    "65535,0,0",
		AttrUnderline:  "single",
	}
	if len(attrs) != len(want) {
		t.Fatalf("StyleAttributes = %v, want %v", attrs, want)
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("attrs[%q] = %q, want %q", k, attrs[k], v)
		}
		if !IsTextAttribute(k) {
			t.Errorf("IsTextAttribute(%q) = false", k)
		}
	}
	if len(StyleAttributes(semantics.TextStyle{})) != 0 {
		t.Error("zero style should produce no attributes")
	}
}
