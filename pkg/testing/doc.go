// Package testing provides a harness for testing accessibility bridges
// without a widget toolkit or a native runtime.
//
// # Quick Start
//
// Create a harness, describe a node with listeners, and query it the way
// the native runtime would:
//
//	func TestButton(t *testing.T) {
//	    h := a11ytest.NewHarnessWithT(t)
//	    node := h.Node(h.Widget("Button"))
//	    node.AddNamingListener(&nameListener{name: "Submit"})
//
//	    if got := h.Bridge.Name(h.Handle(node)); got != "Submit" {
//	        t.Errorf("Name = %q, want %q", got, "Submit")
//	    }
//	}
//
// # Native View
//
// Capture the tree the runtime sees and search it with finders:
//
//	view := h.Capture(root)
//	button := a11ytest.ByName("Submit").Evaluate(view)
//	h.Find(root, a11ytest.ByRole(protocol.RolePushButton)).First()
//
// Compare a captured view against a golden file:
//
//	view.MatchesFile(t, "testdata/form.view.json")
//
// Update golden files with:
//
//	ACCESSBRIDGE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Signals
//
// Signals emitted by the bridge are encoded and decoded through the same
// channel codec a native runtime uses, and recorded:
//
//	node.TextCaretMoved(3)
//	h.Recorder.Names() // ["text-caret-moved"]
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import a11ytest "github.com/go-drift/accessbridge/pkg/testing"
package testing
