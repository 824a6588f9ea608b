package models

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// IndexState says whether an index is open for search and ingest. Closed
// indices stay in the catalog but are never matched by datafeed patterns.
type IndexState int

const (
	indexStateUndefined IndexState = iota
	IndexStateOpen
	IndexStateClosed
)

var strIndexStateArray = [...]string{
	indexStateUndefined: "",
	IndexStateOpen:      "open",
	IndexStateClosed:    "closed",
}

func (s IndexState) String() string {
	if s < 0 || int(s) >= len(strIndexStateArray) {
		return ""
	}
	return strIndexStateArray[s]
}

func ParseIndexState(str string) (IndexState, error) {
	for state := IndexStateOpen; state <= IndexStateClosed; state++ {
		if strings.EqualFold(state.String(), strings.TrimSpace(str)) {
			return state, nil
		}
	}
	return indexStateUndefined, fmt.Errorf("invalid index state: %s", str)
}

func (s IndexState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *IndexState) UnmarshalText(text []byte) (err error) {
	name := string(text)
	*s, err = ParseIndexState(name)
	return
}

// IndexMetadata is the catalog entry for a local index.
type IndexMetadata struct {
	// Name is the concrete index name
	Name string `json:"Name"`

	// State says whether the index is open or closed
	State IndexState `json:"State"`

	// NumShards is the number of primary shards the index is split into
	NumShards int `json:"NumShards"`
}

// IsOpen returns true if the index accepts reads
func (m IndexMetadata) IsOpen() bool {
	return m.State == IndexStateOpen
}

// ShardState is the routing state of a single shard copy.
type ShardState int

const (
	shardStateUndefined ShardState = iota
	ShardStateUnassigned
	ShardStateInitializing
	ShardStateStarted
	ShardStateRelocating
)

var strShardStateArray = [...]string{
	shardStateUndefined:    "",
	ShardStateUnassigned:   "unassigned",
	ShardStateInitializing: "initializing",
	ShardStateStarted:      "started",
	ShardStateRelocating:   "relocating",
}

func (s ShardState) String() string {
	if s < 0 || int(s) >= len(strShardStateArray) {
		return ""
	}
	return strShardStateArray[s]
}

func ParseShardState(str string) (ShardState, error) {
	for state := ShardStateUnassigned; state <= ShardStateRelocating; state++ {
		if strings.EqualFold(state.String(), strings.TrimSpace(str)) {
			return state, nil
		}
	}
	return shardStateUndefined, fmt.Errorf("invalid shard state: %s", str)
}

func (s ShardState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ShardState) UnmarshalText(text []byte) (err error) {
	name := string(text)
	*s, err = ParseShardState(name)
	return
}

// ShardRouting is the placement record for one shard copy of an index.
type ShardRouting struct {
	// Shard is the shard number within the index
	Shard int `json:"Shard"`

	// Primary distinguishes the primary copy from replicas
	Primary bool `json:"Primary"`

	// State is the routing state of this copy
	State ShardState `json:"State"`

	// NodeID is the node holding this copy, empty while unassigned
	NodeID string `json:"NodeID,omitempty"`
}

// IndexRouting is the shard placement table for one index. It mirrors the
// index's shard count: every primary shard has an entry.
type IndexRouting struct {
	// Index is the concrete index name
	Index string `json:"Index"`

	// Shards is the full set of shard copies for the index
	Shards []ShardRouting `json:"Shards"`
}

// AllPrimaryShardsActive returns true when every primary shard copy has
// reached the started state.
func (r IndexRouting) AllPrimaryShardsActive() bool {
	for _, shard := range r.Shards {
		if shard.Primary && shard.State != ShardStateStarted {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the routing table
func (r IndexRouting) Copy() IndexRouting {
	cp := r
	cp.Shards = slices.Clone(r.Shards)
	return cp
}
