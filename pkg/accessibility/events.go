package accessibility

import (
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/semantics"
	"github.com/go-drift/accessbridge/pkg/textbound"
)

// Child identifiers with special meaning. Application-assigned ids for
// lightweight children are non-negative.
const (
	// ChildIDSelf refers to the node itself.
	ChildIDSelf = -1
	// ChildIDNone never matches a child.
	ChildIDNone = -2
	// ChildIDMultiple marks an answer with several children.
	ChildIDMultiple = -3
)

// OK is the Result a listener sets to report success of a mutating call.
const OK = "OK"

// Child describes one child of a node: either a lightweight child with an
// application-assigned id or another node.
type Child struct {
	ID   int
	Node *Node
}

// ChildID returns a lightweight child descriptor.
func ChildID(id int) Child {
	return Child{ID: id}
}

// ChildNode returns a descriptor for a node child.
func ChildNode(n *Node) Child {
	return Child{ID: ChildIDNone, Node: n}
}

// IsNode reports whether c refers to a node.
func (c Child) IsNode() bool {
	return c.Node != nil
}

// NamingEvent carries name, description, help and keyboard-shortcut queries.
type NamingEvent struct {
	Node    *Node
	ChildID int
	// Result is seeded with the inherited value.
	Result string
}

// ControlEvent carries control-semantics queries.
//
// Geometry is window-relative. Child answers focus, selection and hit-test
// queries; Children answers GetChildren and multiple selections.
type ControlEvent struct {
	Node     *Node
	ChildID  int
	X, Y     int
	Width    int
	Height   int
	Count    int
	Role     semantics.Role
	State    semantics.State
	Value    string
	Result   string
	Child    Child
	Children []Child
}

// TextEvent carries caret and single-selection queries.
type TextEvent struct {
	Node    *Node
	ChildID int
	Offset  int
	Length  int
}

// TextExtendedEvent carries rich text queries and commands.
//
// For GetText, a nil Boundary asks for the range [Start, End) (End -1 means
// the end of the text); otherwise it asks for the unit before (Count -1), at
// (Count 0) or after (Count 1) Offset. Boundary queries arrive with Start and
// End at -1 and a listener answers by setting Result, Start and End; leaving
// them at -1 defers to the default engine.
type TextExtendedEvent struct {
	Node     *Node
	ChildID  int
	Start    int
	End      int
	Offset   int
	Count    int
	Index    int
	Boundary *textbound.Boundary
	X, Y     int
	Width    int
	Height   int
	Result   string
	Link     *Node
}

// ActionEvent carries action enumeration and invocation.
type ActionEvent struct {
	Node      *Node
	ChildID   int
	Index     int
	Count     int
	Localized bool
	Result    string
}

// EditableTextEvent carries text mutations. Text is the replacement for
// ReplaceText; Style and Attributes describe SetTextAttributes.
type EditableTextEvent struct {
	Node       *Node
	ChildID    int
	Start      int
	End        int
	Text       string
	Style      *semantics.TextStyle
	Attributes map[string]string
	Result     string
}

// HyperlinkEvent carries queries on a hyperlink node.
type HyperlinkEvent struct {
	Node   *Node
	Index  int
	Result string
}

// TableEvent carries table queries and selection commands. Cell answers
// GetCell, GetCaption and GetSummary; Cells answers header queries.
type TableEvent struct {
	Node     *Node
	ChildID  int
	Row      int
	Column   int
	Count    int
	Cell     *Node
	Cells    []*Node
	Indices  []int
	Selected bool
	Result   string
}

// TableCellEvent carries queries on a table cell node.
type TableCellEvent struct {
	Node     *Node
	Index    int
	Count    int
	Cells    []*Node
	Table    *Node
	Selected bool
}

// ValueEvent carries numeric value queries and commands.
type ValueEvent struct {
	Node    *Node
	ChildID int
	Value   float64
	Result  string
}

// AttributeEvent carries object attribute queries. Group fields are 1-based;
// zero means unset.
type AttributeEvent struct {
	Node        *Node
	ChildID     int
	GroupLevel  int
	GroupCount  int
	GroupIndex  int
	LeftMargin  int
	RightMargin int
	Indent      int
	Alignment   string
	Attributes  map[string]string
}

// TextAttributeEvent carries the text run at Offset. Listeners set Start and
// End to the run bounds. Offset -1 asks for the default attributes.
type TextAttributeEvent struct {
	Node       *Node
	ChildID    int
	Offset     int
	Start      int
	End        int
	Style      semantics.TextStyle
	Attributes map[string]string
}

// rect returns the window-relative geometry a listener left in the event.
func (e *ControlEvent) rect() geometry.Rect {
	return geometry.RectFromXYWH(e.X, e.Y, e.Width, e.Height)
}

func (e *TextExtendedEvent) rect() geometry.Rect {
	return geometry.RectFromXYWH(e.X, e.Y, e.Width, e.Height)
}
