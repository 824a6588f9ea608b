package models

import (
	"golang.org/x/exp/maps"
)

// NodeInfo contains metadata about a node in the cluster. Nodes are opaque to
// the decision logic: a snapshot carries them so callers can map a selected
// node id back to an address, but selection itself only ever reads ids.
type NodeInfo struct {
	NodeID  string            `json:"NodeID"`
	Address string            `json:"Address,omitempty"`
	Labels  map[string]string `json:"Labels,omitempty"`
}

// ID returns the node ID
func (n NodeInfo) ID() string {
	return n.NodeID
}

// Copy returns a deep copy of the node info
func (n NodeInfo) Copy() NodeInfo {
	cp := n
	cp.Labels = maps.Clone(n.Labels)
	return cp
}
