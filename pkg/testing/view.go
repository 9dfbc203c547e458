package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/accessbridge/pkg/accessibility"
)

// UpdateSnapshotsEnv names the environment variable that makes MatchesFile
// rewrite golden files instead of comparing against them.
const UpdateSnapshotsEnv = "ACCESSBRIDGE_UPDATE_SNAPSHOTS"

// maxDepth bounds Capture against cyclic child answers.
const maxDepth = 64

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// View is the accessible tree as the native runtime sees it.
type View struct {
	Handle      accessibility.Handle `json:"-" yaml:"-"`
	Type        string               `json:"type" yaml:"type"`
	Role        string               `json:"role" yaml:"role"`
	Name        string               `json:"name,omitempty" yaml:"name,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	States      []string             `json:"states,omitempty" yaml:"states,omitempty"`
	Interfaces  []string             `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Text        string               `json:"text,omitempty" yaml:"text,omitempty"`
	Children    []*View              `json:"children,omitempty" yaml:"children,omitempty"`

	parent *View
}

// Parent returns the enclosing view, or nil at the root.
func (v *View) Parent() *View {
	return v.parent
}

// HasInterface reports whether the native type implements iface.
func (v *View) HasInterface(iface string) bool {
	return slices.Contains(v.Interfaces, iface)
}

// Capture walks the native tree rooted at h. Child handles are released
// once their subtree has been read.
func Capture(b *accessibility.Bridge, h accessibility.Handle) *View {
	return capture(b, h, nil, 0)
}

func capture(b *accessibility.Bridge, h accessibility.Handle, parent *View, depth int) *View {
	v := &View{
		Handle:      h,
		Type:        b.TypeName(h),
		Role:        b.Role(h).String(),
		Name:        b.Name(h),
		Description: b.Description(h),
		Interfaces:  b.Interfaces(h),
		parent:      parent,
	}
	for _, s := range b.RefStateSet(h).States() {
		v.States = append(v.States, s.String())
	}
	if v.HasInterface("Text") {
		v.Text = b.Text(h, 0, -1)
	}
	if depth >= maxDepth {
		return v
	}
	n := b.ChildCount(h)
	for i := 0; i < n; i++ {
		child := b.RefChild(h, i)
		if child == accessibility.NoHandle {
			continue
		}
		v.Children = append(v.Children, capture(b, child, v, depth+1))
		_ = b.Unref(child)
	}
	return v
}

// JSON returns the indented JSON encoding of the view.
func (v *View) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML returns the YAML encoding of the view.
func (v *View) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MatchesFile compares the view against a golden file. Files ending in
// .yaml or .yml are compared as YAML, everything else as JSON.
// With ACCESSBRIDGE_UPDATE_SNAPSHOTS=1 the file is rewritten instead.
func (v *View) MatchesFile(t TestingT, path string) {
	t.Helper()
	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := v.UpdateFile(path); err != nil {
			t.Fatalf("updating snapshot %s: %v", path, err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot %s: %v (run with %s=1 to create it)", path, err, UpdateSnapshotsEnv)
		return
	}
	got, err := v.encode(path)
	if err != nil {
		t.Fatalf("encoding view: %v", err)
		return
	}
	if diff := Diff(string(want), string(got)); diff != "" {
		t.Errorf("view of %s does not match %s:\n%s", t.Name(), path, diff)
	}
}

// UpdateFile writes the view to path, creating parent directories.
func (v *View) UpdateFile(path string) error {
	data, err := v.encode(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (v *View) encode(path string) ([]byte, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return v.YAML()
	default:
		return v.JSON()
	}
}

// Diff returns a line-oriented diff of two encodings, or "" when they match.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
