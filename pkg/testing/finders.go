package testing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/accessbridge/pkg/protocol"
)

// Finder locates views in a captured native tree.
type Finder interface {
	// Evaluate returns all matching views under root (depth-first pre-order).
	Evaluate(root *View) []*View
	// Description names the finder in failure messages.
	Description() string
}

// FinderResult holds the views a finder matched.
type FinderResult struct {
	views  []*View
	finder Finder
}

// Find evaluates f against root.
func Find(root *View, f Finder) FinderResult {
	if root == nil {
		return FinderResult{finder: f}
	}
	return FinderResult{views: f.Evaluate(root), finder: f}
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first view. It panics when nothing matched.
func (r FinderResult) First() *View {
	if len(r.views) == 0 {
		panic(fmt.Sprintf("Finder found no views: %s", r.description()))
	}
	return r.views[0]
}

// FirstOrNil is First without the panic.
func (r FinderResult) FirstOrNil() *View {
	if len(r.views) == 0 {
		return nil
	}
	return r.views[0]
}

// At returns the index-th view in traversal order, panicking when out of range.
func (r FinderResult) At(index int) *View {
	if index < 0 || index >= len(r.views) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.views), r.description()))
	}
	return r.views[index]
}

// All returns the matched views.
func (r FinderResult) All() []*View {
	return r.views
}

func (r FinderResult) Count() int {
	return len(r.views)
}

// Exists reports whether any view matched.
func (r FinderResult) Exists() bool {
	return len(r.views) > 0
}

// predicateFinder matches views satisfying a predicate.
type predicateFinder struct {
	fn   func(*View) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *View) []*View {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByRole matches views with the native role r.
func ByRole(r protocol.Role) Finder {
	name := r.String()
	return &predicateFinder{
		fn:   func(v *View) bool { return v.Role == name },
		desc: fmt.Sprintf("ByRole(%s)", name),
	}
}

// ByName matches views whose accessible name is exactly name.
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(v *View) bool { return v.Name == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByNameContaining matches views whose accessible name contains substring.
func ByNameContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(v *View) bool { return strings.Contains(v.Name, substring) },
		desc: fmt.Sprintf("ByNameContaining(%q)", substring),
	}
}

// ByText matches views implementing Text whose contents are exactly text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(v *View) bool { return v.HasInterface("Text") && v.Text == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByInterface matches views whose native type implements iface.
func ByInterface(iface string) Finder {
	return &predicateFinder{
		fn:   func(v *View) bool { return v.HasInterface(iface) },
		desc: fmt.Sprintf("ByInterface(%s)", iface),
	}
}

// ByType matches views whose native type name is name.
func ByType(name string) Finder {
	return &predicateFinder{
		fn:   func(v *View) bool { return v.Type == name },
		desc: fmt.Sprintf("ByType(%s)", name),
	}
}

// ByState matches views whose state set holds the named state.
func ByState(s protocol.State) Finder {
	name := s.String()
	return &predicateFinder{
		fn:   func(v *View) bool { return slices.Contains(v.States, name) },
		desc: fmt.Sprintf("ByState(%s)", name),
	}
}

// ByPredicate returns a finder that matches views satisfying fn.
func ByPredicate(fn func(*View) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds views matching 'matching' that are descendants
// of views matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *View) []*View {
	var results []*View
	seen := make(map[*View]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// The ancestor itself is not searched.
		for _, child := range ancestor.Children {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches views satisfying 'matching'
// that are descendants of views matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds views matching 'matching' that are ancestors
// of views matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root *View) []*View {
	candidates := make(map[*View]bool)
	for _, v := range f.matching.Evaluate(root) {
		candidates[v] = true
	}
	if len(candidates) == 0 {
		return nil
	}
	hit := make(map[*View]bool)
	for _, d := range f.of.Evaluate(root) {
		for a := d.parent; a != nil; a = a.parent {
			if candidates[a] {
				hit[a] = true
			}
		}
	}
	// Keep traversal order.
	return collectMatches(root, func(v *View) bool { return hit[v] })
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches views satisfying 'matching'
// that are ancestors of views matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// views that satisfy the predicate.
func collectMatches(root *View, predicate func(*View) bool) []*View {
	var results []*View
	walkTree(root, func(v *View) bool {
		if predicate(v) {
			results = append(results, v)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal of the view tree.
// The visitor returns false to stop traversal.
func walkTree(root *View, visitor func(*View) bool) bool {
	if !visitor(root) {
		return false
	}
	for _, child := range root.Children {
		if !walkTree(child, visitor) {
			return false
		}
	}
	return true
}
