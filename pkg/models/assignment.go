package models

import (
	"fmt"
)

// Assignment is the outcome of a node-selection decision: either the id of
// the node the datafeed's task should run on, or an explanation of why no
// node could be selected. Explanation is set only when no node was selected;
// no partial or ambiguous state is representable.
//
// A successful assignment may still carry an empty NodeID when the job's
// task itself has not been placed on a node yet. That is not a refusal, just
// an assignment that cannot be acted on until the task settles.
type Assignment struct {
	// NodeID is the selected node, empty when no node was selected
	NodeID string `json:"NodeID,omitempty"`

	// Explanation says why no node was selected
	Explanation string `json:"Explanation,omitempty"`
}

// NewAssignment returns a successful assignment to the given node.
func NewAssignment(nodeID string) Assignment {
	return Assignment{NodeID: nodeID}
}

// NoAssignment returns a failed assignment carrying the explanation.
func NoAssignment(explanation string) Assignment {
	return Assignment{Explanation: explanation}
}

// IsAssigned returns true when a node was selected.
func (a Assignment) IsAssigned() bool {
	return a.NodeID != ""
}

func (a Assignment) String() string {
	if a.Explanation != "" {
		return fmt.Sprintf("no node selected: %s", a.Explanation)
	}
	if a.NodeID == "" {
		return "no node selected: task awaiting allocation"
	}
	return fmt.Sprintf("assigned to node [%s]", a.NodeID)
}
