package protocol

import "github.com/go-drift/accessbridge/pkg/semantics"

// RelationType is a native relation type.
type RelationType int

const (
	RelationNull RelationType = iota
	RelationControlledBy
	RelationControllerFor
	RelationLabelFor
	RelationLabelledBy
	RelationMemberOf
	RelationNodeChildOf
	RelationFlowsTo
	RelationFlowsFrom
	RelationSubwindowOf
	RelationEmbeds
	RelationEmbeddedBy
	RelationPopupFor
	RelationParentWindowOf
	RelationDescribedBy
	RelationDescriptionFor
)

var relationNames = map[RelationType]string{
	RelationNull:           "null",
	RelationControlledBy:   "controlled-by",
	RelationControllerFor:  "controller-for",
	RelationLabelFor:       "label-for",
	RelationLabelledBy:     "labelled-by",
	RelationMemberOf:       "member-of",
	RelationNodeChildOf:    "node-child-of",
	RelationFlowsTo:        "flows-to",
	RelationFlowsFrom:      "flows-from",
	RelationSubwindowOf:    "subwindow-of",
	RelationEmbeds:         "embeds",
	RelationEmbeddedBy:     "embedded-by",
	RelationPopupFor:       "popup-for",
	RelationParentWindowOf: "parent-window-of",
	RelationDescribedBy:    "described-by",
	RelationDescriptionFor: "description-for",
}

func (t RelationType) String() string {
	if name, ok := relationNames[t]; ok {
		return name
	}
	return "null"
}

var relationTable = map[semantics.RelationKind]RelationType{
	semantics.RelationControlledBy:   RelationControlledBy,
	semantics.RelationControllerFor:  RelationControllerFor,
	semantics.RelationDescribedBy:    RelationDescribedBy,
	semantics.RelationDescriptionFor: RelationDescriptionFor,
	semantics.RelationEmbeddedBy:     RelationEmbeddedBy,
	semantics.RelationEmbeds:         RelationEmbeds,
	semantics.RelationFlowsFrom:      RelationFlowsFrom,
	semantics.RelationFlowsTo:        RelationFlowsTo,
	semantics.RelationLabelFor:       RelationLabelFor,
	semantics.RelationLabelledBy:     RelationLabelledBy,
	semantics.RelationMemberOf:       RelationMemberOf,
	semantics.RelationNodeChildOf:    RelationNodeChildOf,
	semantics.RelationParentWindowOf: RelationParentWindowOf,
	semantics.RelationPopupFor:       RelationPopupFor,
	semantics.RelationSubwindowOf:    RelationSubwindowOf,
}

// TranslateRelation maps a semantic relation kind to the native type.
func TranslateRelation(k semantics.RelationKind) (RelationType, bool) {
	t, ok := relationTable[k]
	return t, ok
}
