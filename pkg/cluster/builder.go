package cluster

import (
	"github.com/shoal-project/shoal/pkg/models"
)

// Builder assembles immutable snapshots. It is the construction path shared
// by the registry, the state-file loader and test fixtures. Later entries
// with the same key replace earlier ones.
type Builder struct {
	version   uint64
	nodes     map[string]models.NodeInfo
	indices   map[string]models.IndexMetadata
	routing   map[string]models.IndexRouting
	jobs      map[string]*models.Job
	datafeeds map[string]*models.Datafeed
	tasks     map[string]*models.JobTask
}

func NewBuilder() *Builder {
	return &Builder{
		nodes:     make(map[string]models.NodeInfo),
		indices:   make(map[string]models.IndexMetadata),
		routing:   make(map[string]models.IndexRouting),
		jobs:      make(map[string]*models.Job),
		datafeeds: make(map[string]*models.Datafeed),
		tasks:     make(map[string]*models.JobTask),
	}
}

// WithVersion stamps the built snapshot with the given version.
func (b *Builder) WithVersion(version uint64) *Builder {
	b.version = version
	return b
}

// Node adds a node to the snapshot.
func (b *Builder) Node(node models.NodeInfo) *Builder {
	b.nodes[node.NodeID] = node
	return b
}

// Index adds an index catalog entry. Routing is separate: an index without a
// routing table is visible in the catalog but fails shard readiness checks.
func (b *Builder) Index(meta models.IndexMetadata) *Builder {
	b.indices[meta.Name] = meta
	return b
}

// Routing sets the shard routing table for an index.
func (b *Builder) Routing(routing models.IndexRouting) *Builder {
	b.routing[routing.Index] = routing
	return b
}

// Job adds a job catalog entry.
func (b *Builder) Job(job *models.Job) *Builder {
	b.jobs[job.ID] = job
	return b
}

// Datafeed adds a datafeed. The datafeed is normalized on the way in.
func (b *Builder) Datafeed(datafeed *models.Datafeed) *Builder {
	datafeed.Normalize()
	b.datafeeds[datafeed.ID] = datafeed
	return b
}

// JobTask adds a task record, keyed by its job id.
func (b *Builder) JobTask(task *models.JobTask) *Builder {
	b.tasks[task.JobID] = task
	return b
}

// Build returns the immutable snapshot. The builder stays usable afterwards;
// the snapshot is detached from it.
func (b *Builder) Build() *Snapshot {
	return &Snapshot{
		version:   b.version,
		nodes:     copyNodeMap(b.nodes),
		indices:   copyIndexMap(b.indices),
		routing:   copyRoutingMap(b.routing),
		jobs:      copyJobMap(b.jobs),
		datafeeds: copyDatafeedMap(b.datafeeds),
		tasks:     copyTaskMap(b.tasks),
	}
}
