package testing

import (
	"strings"
	"testing"

	"github.com/go-drift/accessbridge/pkg/protocol"
)

const formFixture = `
class: Window
role: window
name: Settings
children:
  - role: push-button
    name: OK
    actions: [press]
  - role: label
    name: Greeting
    text: Hello world
  - role: list
    name: Options
    children:
      - role: list-item
        name: First option
      - role: list-item
        name: Second option
        states: [selected]
`

func captureForm(t *testing.T) *View {
	t.Helper()
	h := NewHarnessWithT(t)
	f, err := ParseFixture([]byte(formFixture))
	if err != nil {
		t.Fatalf("ParseFixture: %v", err)
	}
	root, err := h.Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return h.Capture(root)
}

func TestByRole(t *testing.T) {
	view := captureForm(t)

	result := Find(view, ByRole(protocol.RolePushButton))
	if result.Count() != 1 {
		t.Fatalf("expected 1 push button, got %d", result.Count())
	}
	if got := result.First().Name; got != "OK" {
		t.Errorf("expected name 'OK', got %q", got)
	}
}

func TestByName(t *testing.T) {
	view := captureForm(t)

	if !Find(view, ByName("Greeting")).Exists() {
		t.Error("expected to find 'Greeting'")
	}
	if Find(view, ByName("Greet")).Exists() {
		t.Error("should not find partial name 'Greet'")
	}
}

func TestByNameContaining(t *testing.T) {
	view := captureForm(t)

	if got := Find(view, ByNameContaining("option")).Count(); got != 2 {
		t.Errorf("expected 2 options, got %d", got)
	}
}

func TestByText(t *testing.T) {
	view := captureForm(t)

	if !Find(view, ByText("Hello world")).Exists() {
		t.Error("expected to find text 'Hello world'")
	}
	if Find(view, ByText("Hello")).Exists() {
		t.Error("should not find partial text 'Hello'")
	}
}

func TestByInterface(t *testing.T) {
	view := captureForm(t)

	result := Find(view, ByInterface("Action"))
	if result.Count() != 1 || result.First().Name != "OK" {
		t.Errorf("expected only the button to implement Action, got %d views", result.Count())
	}
	if got := Find(view, ByInterface("Object")).Count(); got != 6 {
		t.Errorf("expected every view to implement Object, got %d", got)
	}
}

func TestByType(t *testing.T) {
	view := captureForm(t)

	if view.Type != "TestWindow" {
		t.Errorf("expected root type TestWindow, got %q", view.Type)
	}
	if !Find(view, ByType("TestNode+Action")).Exists() {
		t.Error("expected a TestNode+Action view")
	}
}

func TestByState(t *testing.T) {
	view := captureForm(t)

	result := Find(view, ByState(protocol.StateSelected))
	if result.Count() != 1 || result.First().Name != "Second option" {
		t.Errorf("expected only 'Second option' selected, got %d views", result.Count())
	}
}

func TestByPredicate(t *testing.T) {
	view := captureForm(t)

	leaves := Find(view, ByPredicate(func(v *View) bool { return len(v.Children) == 0 }))
	if leaves.Count() != 4 {
		t.Errorf("expected 4 leaves, got %d", leaves.Count())
	}
}

func TestFinderResult_FirstOrNil(t *testing.T) {
	view := captureForm(t)

	if Find(view, ByName("Missing")).FirstOrNil() != nil {
		t.Error("expected nil for no matches")
	}
	if Find(view, ByName("OK")).FirstOrNil() == nil {
		t.Error("expected a match for 'OK'")
	}
}

func TestFinderResult_FirstPanicsWithDescription(t *testing.T) {
	view := captureForm(t)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, `ByName("Missing")`) {
			t.Errorf("panic message %q does not name the finder", msg)
		}
	}()
	Find(view, ByName("Missing")).First()
}

func TestFinderResult_AtOutOfRange(t *testing.T) {
	view := captureForm(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	Find(view, ByNameContaining("option")).At(2)
}

func TestFindNilRoot(t *testing.T) {
	if Find(nil, ByName("OK")).Exists() {
		t.Error("expected no matches under a nil root")
	}
}

func TestDescendant(t *testing.T) {
	view := captureForm(t)

	items := Find(view, Descendant(ByRole(protocol.RoleList), ByRole(protocol.RoleListItem)))
	if items.Count() != 2 {
		t.Fatalf("expected 2 list items under the list, got %d", items.Count())
	}
	if items.At(0).Name != "First option" || items.At(1).Name != "Second option" {
		t.Errorf("unexpected order: %q, %q", items.At(0).Name, items.At(1).Name)
	}

	none := Find(view, Descendant(ByRole(protocol.RolePushButton), ByRole(protocol.RoleListItem)))
	if none.Exists() {
		t.Error("button should have no list item descendants")
	}

	// The ancestor itself is not a match.
	self := Find(view, Descendant(ByRole(protocol.RoleList), ByRole(protocol.RoleList)))
	if self.Exists() {
		t.Error("Descendant should not match the ancestor itself")
	}
}

func TestAncestor(t *testing.T) {
	view := captureForm(t)

	lists := Find(view, Ancestor(ByName("Second option"), ByRole(protocol.RoleList)))
	if lists.Count() != 1 || lists.First().Name != "Options" {
		t.Errorf("expected the Options list, got %d views", lists.Count())
	}

	if Find(view, Ancestor(ByName("OK"), ByRole(protocol.RoleList))).Exists() {
		t.Error("the button is not inside the list")
	}

	windows := Find(view, Ancestor(ByNameContaining("option"), ByRole(protocol.RoleWindow)))
	if windows.Count() != 1 {
		t.Errorf("expected the window once, got %d", windows.Count())
	}
}
