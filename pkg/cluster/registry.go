package cluster

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/shoal-project/shoal/pkg/lib/math"
	"github.com/shoal-project/shoal/pkg/models"
)

// Registry is the live, mutex-guarded cluster state store. Mutations bump a
// version stamp and wake subscribers; Snapshot() issues detached, immutable
// views that stay valid however the registry moves on.
type Registry struct {
	mu        sync.RWMutex
	version   uint64
	nodes     map[string]models.NodeInfo
	indices   map[string]models.IndexMetadata
	routing   map[string]models.IndexRouting
	jobs      map[string]*models.Job
	datafeeds map[string]*models.Datafeed
	tasks     map[string]*models.JobTask

	subscribers map[int]chan struct{}
	nextSubID   int
}

func NewRegistry() *Registry {
	return &Registry{
		nodes:       make(map[string]models.NodeInfo),
		indices:     make(map[string]models.IndexMetadata),
		routing:     make(map[string]models.IndexRouting),
		jobs:        make(map[string]*models.Job),
		datafeeds:   make(map[string]*models.Datafeed),
		tasks:       make(map[string]*models.JobTask),
		subscribers: make(map[int]chan struct{}),
	}
}

// Seed replaces the registry content with the given snapshot's state. Meant
// for bootstrapping from a state file before the registry goes live.
func (r *Registry) Seed(ctx context.Context, snap *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes = copyNodeMap(snap.nodes)
	r.indices = copyIndexMap(snap.indices)
	r.routing = copyRoutingMap(snap.routing)
	r.jobs = copyJobMap(snap.jobs)
	r.datafeeds = copyDatafeedMap(snap.datafeeds)
	r.tasks = copyTaskMap(snap.tasks)
	r.bumpAndNotify(ctx)
}

// Snapshot returns an immutable view of the current state.
func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Snapshot{
		version:   r.version,
		nodes:     copyNodeMap(r.nodes),
		indices:   copyIndexMap(r.indices),
		routing:   copyRoutingMap(r.routing),
		jobs:      copyJobMap(r.jobs),
		datafeeds: copyDatafeedMap(r.datafeeds),
		tasks:     copyTaskMap(r.tasks),
	}
}

// Version returns the current state version.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Subscribe returns a channel that receives a coalesced signal after every
// mutation, and a function to unsubscribe. The channel never blocks writers:
// a signal that has not been consumed yet stands for all mutations since.
func (r *Registry) Subscribe() (<-chan struct{}, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSubID
	r.nextSubID++
	ch := make(chan struct{}, 1)
	r.subscribers[id] = ch
	return ch, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subscribers, id)
	}
}

func (r *Registry) PutNode(ctx context.Context, node models.NodeInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes[node.NodeID] = node.Copy()
	log.Ctx(ctx).Trace().Str("NodeID", node.NodeID).Msg("node added to registry")
	r.bumpAndNotify(ctx)
}

func (r *Registry) DeleteNode(ctx context.Context, nodeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.nodes[nodeID]; !ok {
		return
	}
	delete(r.nodes, nodeID)
	log.Ctx(ctx).Trace().Str("NodeID", nodeID).Msg("node removed from registry")
	r.bumpAndNotify(ctx)
}

// PutIndex sets the catalog entry and routing table for an index.
func (r *Registry) PutIndex(ctx context.Context, meta models.IndexMetadata, routing models.IndexRouting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indices[meta.Name] = meta
	routing.Index = meta.Name
	r.routing[meta.Name] = routing.Copy()
	log.Ctx(ctx).Trace().Str("Index", meta.Name).Msg("index added to registry")
	r.bumpAndNotify(ctx)
}

// UpdateShardState moves one primary shard of an index to the given state.
func (r *Registry) UpdateShardState(ctx context.Context, index string, shard int, state models.ShardState, nodeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	routing, ok := r.routing[index]
	if !ok {
		return
	}
	routing = routing.Copy()
	for i := range routing.Shards {
		if routing.Shards[i].Shard == shard && routing.Shards[i].Primary {
			routing.Shards[i].State = state
			routing.Shards[i].NodeID = nodeID
		}
	}
	r.routing[index] = routing
	log.Ctx(ctx).Trace().
		Str("Index", index).
		Int("Shard", shard).
		Stringer("State", state).
		Msg("shard state updated")
	r.bumpAndNotify(ctx)
}

func (r *Registry) DeleteIndex(ctx context.Context, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.indices[name]; !ok {
		return
	}
	delete(r.indices, name)
	delete(r.routing, name)
	log.Ctx(ctx).Trace().Str("Index", name).Msg("index removed from registry")
	r.bumpAndNotify(ctx)
}

func (r *Registry) PutJob(ctx context.Context, job *models.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job.Copy()
	log.Ctx(ctx).Trace().Str("JobID", job.ID).Msg("job added to registry")
	r.bumpAndNotify(ctx)
}

func (r *Registry) DeleteJob(ctx context.Context, jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[jobID]; !ok {
		return
	}
	delete(r.jobs, jobID)
	log.Ctx(ctx).Trace().Str("JobID", jobID).Msg("job removed from registry")
	r.bumpAndNotify(ctx)
}

func (r *Registry) PutDatafeed(ctx context.Context, datafeed *models.Datafeed) {
	r.mu.Lock()
	defer r.mu.Unlock()
	datafeed = datafeed.Copy()
	datafeed.Normalize()
	r.datafeeds[datafeed.ID] = datafeed
	log.Ctx(ctx).Trace().Str("DatafeedID", datafeed.ID).Msg("datafeed added to registry")
	r.bumpAndNotify(ctx)
}

func (r *Registry) DeleteDatafeed(ctx context.Context, datafeedID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.datafeeds[datafeedID]; !ok {
		return
	}
	delete(r.datafeeds, datafeedID)
	log.Ctx(ctx).Trace().Str("DatafeedID", datafeedID).Msg("datafeed removed from registry")
	r.bumpAndNotify(ctx)
}

// PutJobTask installs or reassigns the task record for a job. Allocation ids
// stay monotonic: the stored id is the larger of the incoming record's id and
// the previous id plus one, so both locally driven reassignments (incoming id
// zero) and records replicated from an authoritative source keep ordering.
// An incoming record without a status keeps the previous record's status,
// which is what makes reassignment observable as staleness.
func (r *Registry) PutJobTask(ctx context.Context, task *models.JobTask) models.JobTask {
	r.mu.Lock()
	defer r.mu.Unlock()

	task = task.Copy()
	if prev, ok := r.tasks[task.JobID]; ok {
		task.AllocationID = math.Max(prev.AllocationID+1, task.AllocationID)
		if task.Status == nil && prev.Status != nil {
			status := *prev.Status
			task.Status = &status
		}
	} else {
		task.AllocationID = math.Max(1, task.AllocationID)
	}
	r.tasks[task.JobID] = task

	log.Ctx(ctx).Trace().
		Str("JobID", task.JobID).
		Str("NodeID", task.NodeID).
		Int64("AllocationID", task.AllocationID).
		Msg("job task put in registry")
	r.bumpAndNotify(ctx)
	return *task.Copy()
}

// UpdateJobTaskStatus records the status an executing node reported for its
// job task.
func (r *Registry) UpdateJobTaskStatus(ctx context.Context, jobID string, status models.JobTaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[jobID]
	if !ok {
		return NewErrJobTaskNotFound(jobID)
	}
	task = task.Copy()
	task.Status = &status
	r.tasks[jobID] = task

	log.Ctx(ctx).Trace().
		Str("JobID", jobID).
		Stringer("State", status.State).
		Int64("AllocationID", status.AllocationID).
		Msg("job task status updated")
	r.bumpAndNotify(ctx)
	return nil
}

func (r *Registry) DeleteJobTask(ctx context.Context, jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[jobID]; !ok {
		return
	}
	delete(r.tasks, jobID)
	log.Ctx(ctx).Trace().Str("JobID", jobID).Msg("job task removed from registry")
	r.bumpAndNotify(ctx)
}

// bumpAndNotify must be called with the write lock held.
func (r *Registry) bumpAndNotify(ctx context.Context) {
	r.version++
	mutationCount.Inc(ctx)
	for _, ch := range r.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
