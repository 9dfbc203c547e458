package capability

import (
	"reflect"
	"testing"

	"github.com/go-drift/accessbridge/pkg/semantics"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		role semantics.Role
		want Set
	}{
		{semantics.RoleUnspecified, Full},
		{semantics.RolePushButton, Of(Action)},
		{semantics.RoleComboBox, Of(Action, EditableText, Selection, Text)},
		{semantics.RoleText, Of(EditableText, Hypertext, Text)},
		{semantics.RoleSpinButton, Of(Action, Text, Value)},
		{semantics.RoleTable, Of(Selection, Table)},
		{semantics.RoleLink, Of(Action, Hypertext, Text)},
		{semantics.RoleLabel, Of(Text)},
		{semantics.RoleWindow, Empty},
		{semantics.RoleColumn, Empty},
		{semantics.RoleClock, Empty},
	}
	for _, tt := range tests {
		if got := Resolve(tt.role); got != tt.want {
			t.Errorf("Resolve(%v) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for _, r := range append(semantics.Roles(), semantics.RoleUnspecified) {
		first := Resolve(r)
		for i := 0; i < 3; i++ {
			if got := Resolve(r); got != first {
				t.Fatalf("Resolve(%v) = %v on call %d, want %v", r, got, i, first)
			}
		}
	}
}

func TestSetString(t *testing.T) {
	if got := Of(Value, Action).String(); got != "Action|Value" {
		t.Errorf("String() = %q, want %q", got, "Action|Value")
	}
	if got := Empty.String(); got != "none" {
		t.Errorf("Empty.String() = %q, want %q", got, "none")
	}
	if Full.Len() != len(All()) {
		t.Errorf("Full.Len() = %d, want %d", Full.Len(), len(All()))
	}
}

func TestInterfaces(t *testing.T) {
	got := Interfaces(Of(Text, Action))
	want := []string{"Object", "Component", "Action", "Text"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Interfaces = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	c, ok := Parse("editabletext")
	if !ok || c != EditableText {
		t.Errorf("Parse(editabletext) = (%v, %v), want (EditableText, true)", c, ok)
	}
	if _, ok := Parse("Component"); ok {
		t.Error("Parse(Component) should fail, it is not optional")
	}
}
