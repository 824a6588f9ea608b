package cluster

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/shoal-project/shoal/pkg/indexes"
	"github.com/shoal-project/shoal/pkg/models"
)

// Snapshot is an immutable, read-only view of cluster state as of a single
// consistent point in time: known nodes, the index catalog and its shard
// routing, the job and datafeed catalogs, and the job-task registry. Decision
// functions read snapshots and never mutate them; accessors hand out copies
// so holders cannot reach back into shared state.
type Snapshot struct {
	version   uint64
	nodes     map[string]models.NodeInfo
	indices   map[string]models.IndexMetadata
	routing   map[string]models.IndexRouting
	jobs      map[string]*models.Job
	datafeeds map[string]*models.Datafeed
	tasks     map[string]*models.JobTask
}

// Version is the monotonically increasing stamp of the state this snapshot
// was taken from. Two snapshots with the same version are identical.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Node returns the node with the given id.
func (s *Snapshot) Node(nodeID string) (models.NodeInfo, bool) {
	node, ok := s.nodes[nodeID]
	if !ok {
		return models.NodeInfo{}, false
	}
	return node.Copy(), true
}

// Nodes returns all known nodes, sorted by id.
func (s *Snapshot) Nodes() []models.NodeInfo {
	nodes := make([]models.NodeInfo, 0, len(s.nodes))
	for _, node := range s.nodes {
		nodes = append(nodes, node.Copy())
	}
	slices.SortFunc(nodes, func(a, b models.NodeInfo) bool {
		return a.NodeID < b.NodeID
	})
	return nodes
}

// Job returns the job catalog entry with the given id.
func (s *Snapshot) Job(jobID string) (*models.Job, bool) {
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, false
	}
	return job.Copy(), true
}

// Datafeed returns the datafeed with the given id.
func (s *Snapshot) Datafeed(datafeedID string) (*models.Datafeed, bool) {
	datafeed, ok := s.datafeeds[datafeedID]
	if !ok {
		return nil, false
	}
	return datafeed.Copy(), true
}

// Datafeeds returns all configured datafeeds, sorted by id.
func (s *Snapshot) Datafeeds() []*models.Datafeed {
	feeds := make([]*models.Datafeed, 0, len(s.datafeeds))
	for _, datafeed := range s.datafeeds {
		feeds = append(feeds, datafeed.Copy())
	}
	slices.SortFunc(feeds, func(a, b *models.Datafeed) bool {
		return a.ID < b.ID
	})
	return feeds
}

// JobTask returns the task record for the given job, if one exists.
func (s *Snapshot) JobTask(jobID string) (*models.JobTask, bool) {
	task, ok := s.tasks[jobID]
	if !ok {
		return nil, false
	}
	return task.Copy(), true
}

// Index returns the catalog entry for the given concrete index name.
func (s *Snapshot) Index(name string) (models.IndexMetadata, bool) {
	meta, ok := s.indices[name]
	return meta, ok
}

// OpenIndices returns the names of all open indices, sorted. Closed indices
// stay in the catalog but are excluded: datafeed patterns never match them.
func (s *Snapshot) OpenIndices() []string {
	names := make([]string, 0, len(s.indices))
	for name, meta := range s.indices {
		if meta.IsOpen() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Routing returns the shard routing table for the given index.
func (s *Snapshot) Routing(index string) (models.IndexRouting, bool) {
	routing, ok := s.routing[index]
	if !ok {
		return models.IndexRouting{}, false
	}
	return routing.Copy(), true
}

// ResolveIndices expands the given patterns against this snapshot's open
// index catalog.
func (s *Snapshot) ResolveIndices(patterns []string) (indexes.Resolution, error) {
	return indexes.Resolve(patterns, s.OpenIndices())
}

// copyNodeMap and friends produce the detached maps snapshots are built from.

func copyNodeMap(src map[string]models.NodeInfo) map[string]models.NodeInfo {
	dst := make(map[string]models.NodeInfo, len(src))
	for id, node := range src {
		dst[id] = node.Copy()
	}
	return dst
}

func copyIndexMap(src map[string]models.IndexMetadata) map[string]models.IndexMetadata {
	return maps.Clone(src)
}

func copyRoutingMap(src map[string]models.IndexRouting) map[string]models.IndexRouting {
	dst := make(map[string]models.IndexRouting, len(src))
	for name, routing := range src {
		dst[name] = routing.Copy()
	}
	return dst
}

func copyJobMap(src map[string]*models.Job) map[string]*models.Job {
	dst := make(map[string]*models.Job, len(src))
	for id, job := range src {
		dst[id] = job.Copy()
	}
	return dst
}

func copyDatafeedMap(src map[string]*models.Datafeed) map[string]*models.Datafeed {
	dst := make(map[string]*models.Datafeed, len(src))
	for id, datafeed := range src {
		dst[id] = datafeed.Copy()
	}
	return dst
}

func copyTaskMap(src map[string]*models.JobTask) map[string]*models.JobTask {
	dst := make(map[string]*models.JobTask, len(src))
	for id, task := range src {
		dst[id] = task.Copy()
	}
	return dst
}
