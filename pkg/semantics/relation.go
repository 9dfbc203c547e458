package semantics

// RelationKind names a directed relation between two nodes.
// Symmetric pairs (LabelFor / LabelledBy) are independent kinds; adding one
// never adds the other.
type RelationKind int

const (
	RelationControlledBy RelationKind = iota
	RelationControllerFor
	RelationDescribedBy
	RelationDescriptionFor
	RelationEmbeddedBy
	RelationEmbeds
	RelationFlowsFrom
	RelationFlowsTo
	RelationLabelFor
	RelationLabelledBy
	RelationMemberOf
	RelationNodeChildOf
	RelationParentWindowOf
	RelationPopupFor
	RelationSubwindowOf

	relationCount
)

var relationNames = [...]string{
	"controlled-by", "controller-for", "described-by", "description-for",
	"embedded-by", "embeds", "flows-from", "flows-to", "label-for",
	"labelled-by", "member-of", "node-child-of", "parent-window-of",
	"popup-for", "subwindow-of",
}

func (k RelationKind) String() string {
	if k < 0 || k >= relationCount {
		return "unknown"
	}
	return relationNames[k]
}

// Valid reports whether k is part of the relation vocabulary.
func (k RelationKind) Valid() bool {
	return k >= 0 && k < relationCount
}

// ParseRelationKind looks up a relation kind by name.
func ParseRelationKind(name string) (RelationKind, bool) {
	for i, n := range relationNames {
		if n == name {
			return RelationKind(i), true
		}
	}
	return 0, false
}

// RelationKinds lists every relation kind in declaration order.
func RelationKinds() []RelationKind {
	kinds := make([]RelationKind, relationCount)
	for i := range kinds {
		kinds[i] = RelationKind(i)
	}
	return kinds
}
