package testing

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	"github.com/go-drift/accessbridge/pkg/semantics"
)

// Fixture describes a node and its sub-nodes with static answers. Only the
// root's Class is used; sub-nodes have no widget.
//
//	class: Window
//	role: window
//	name: Settings
//	children:
//	  - role: push-button
//	    name: OK
//	    actions: [press]
type Fixture struct {
	Class       string     `yaml:"class,omitempty" json:"class,omitempty"`
	Role        string     `yaml:"role,omitempty" json:"role,omitempty"`
	Name        string     `yaml:"name,omitempty" json:"name,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	States      []string   `yaml:"states,omitempty" json:"states,omitempty"`
	Text        string     `yaml:"text,omitempty" json:"text,omitempty"`
	Actions     []string   `yaml:"actions,omitempty" json:"actions,omitempty"`
	Value       *float64   `yaml:"value,omitempty" json:"value,omitempty"`
	Children    []*Fixture `yaml:"children,omitempty" json:"children,omitempty"`
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// Build creates the nodes described by f and returns the root.
func (h *Harness) Build(f *Fixture) (*accessibility.Node, error) {
	class := f.Class
	if class == "" {
		class = "Window"
	}
	root, err := h.Bridge.NodeFor(h.Widget(class))
	if err != nil {
		return nil, err
	}
	if err := h.describe(root, f); err != nil {
		return nil, err
	}
	return root, nil
}

func (h *Harness) describe(n *accessibility.Node, f *Fixture) error {
	fx, err := parseFixture(f)
	if err != nil {
		return err
	}
	if f.Name != "" || f.Description != "" {
		if err := n.AddNamingListener(&fixtureNaming{fx}); err != nil {
			return err
		}
	}
	if f.Role != "" || len(f.States) > 0 {
		if err := n.AddControlListener(&fixtureControl{fx}); err != nil {
			return err
		}
	}
	if f.Text != "" {
		if err := n.AddTextExtendedListener(&fixtureText{parsedFixture: fx}); err != nil {
			return err
		}
	}
	if len(f.Actions) > 0 {
		if err := n.AddActionListener(&fixtureAction{parsedFixture: fx}); err != nil {
			return err
		}
	}
	if f.Value != nil {
		if err := n.AddValueListener(&fixtureValue{parsedFixture: fx}); err != nil {
			return err
		}
	}
	for _, cf := range f.Children {
		child, err := h.Bridge.NewNode(n)
		if err != nil {
			return err
		}
		if err := h.describe(child, cf); err != nil {
			return err
		}
	}
	return nil
}

// parsedFixture is a Fixture with its names resolved.
type parsedFixture struct {
	*Fixture
	role  semantics.Role
	state semantics.State
	text  []rune
}

func parseFixture(f *Fixture) (*parsedFixture, error) {
	fx := &parsedFixture{Fixture: f, role: semantics.RoleUnspecified, text: []rune(f.Text)}
	if f.Role != "" {
		r, ok := semantics.ParseRole(f.Role)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", f.Role)
		}
		fx.role = r
	}
	for _, name := range f.States {
		s, ok := semantics.ParseState(name)
		if !ok {
			return nil, fmt.Errorf("unknown state %q", name)
		}
		fx.state = fx.state.Set(s)
	}
	return fx, nil
}

type fixtureNaming struct {
	*parsedFixture
}

func (l *fixtureNaming) GetName(e *accessibility.NamingEvent) {
	if l.Name != "" {
		e.Result = l.Name
	}
}

func (l *fixtureNaming) GetDescription(e *accessibility.NamingEvent) {
	if l.Description != "" {
		e.Result = l.Description
	}
}

func (l *fixtureNaming) GetHelp(*accessibility.NamingEvent)             {}
func (l *fixtureNaming) GetKeyboardShortcut(*accessibility.NamingEvent) {}

type fixtureControl struct {
	*parsedFixture
}

func (l *fixtureControl) GetRole(e *accessibility.ControlEvent) {
	if l.role != semantics.RoleUnspecified {
		e.Role = l.role
	}
}

// GetState replaces the inherited flags, so unlisted inverted flags such
// as read-only are cleared.
func (l *fixtureControl) GetState(e *accessibility.ControlEvent) {
	if len(l.States) > 0 {
		e.State = l.state
	}
}

func (l *fixtureControl) GetChildAtPoint(*accessibility.ControlEvent)  {}
func (l *fixtureControl) GetLocation(*accessibility.ControlEvent)      {}
func (l *fixtureControl) GetChildCount(*accessibility.ControlEvent)    {}
func (l *fixtureControl) GetChildren(*accessibility.ControlEvent)      {}
func (l *fixtureControl) GetDefaultAction(*accessibility.ControlEvent) {}
func (l *fixtureControl) GetFocus(*accessibility.ControlEvent)         {}
func (l *fixtureControl) GetSelection(*accessibility.ControlEvent)     {}
func (l *fixtureControl) GetValue(*accessibility.ControlEvent)         {}

type fixtureText struct {
	*parsedFixture
	accessibility.TextExtendedAdapter
}

func (l *fixtureText) GetCharacterCount(e *accessibility.TextExtendedEvent) {
	e.Count = len(l.text)
}

// GetText answers range queries; boundary queries fall through to the
// default engine.
func (l *fixtureText) GetText(e *accessibility.TextExtendedEvent) {
	if e.Boundary != nil {
		return
	}
	end := e.End
	if end < 0 || end > len(l.text) {
		end = len(l.text)
	}
	start := min(max(e.Start, 0), end)
	e.Result = string(l.text[start:end])
	e.Start, e.End = start, end
}

type fixtureAction struct {
	*parsedFixture
	accessibility.ActionAdapter
}

func (l *fixtureAction) GetActionCount(e *accessibility.ActionEvent) {
	e.Count = len(l.Actions)
}

func (l *fixtureAction) GetName(e *accessibility.ActionEvent) {
	if e.Index >= 0 && e.Index < len(l.Actions) {
		e.Result = l.Actions[e.Index]
	}
}

func (l *fixtureAction) DoAction(e *accessibility.ActionEvent) {
	if e.Index >= 0 && e.Index < len(l.Actions) {
		e.Result = accessibility.OK
	}
}

type fixtureValue struct {
	*parsedFixture
	accessibility.ValueAdapter
}

func (l *fixtureValue) GetCurrentValue(e *accessibility.ValueEvent) {
	e.Value = *l.Value
}
