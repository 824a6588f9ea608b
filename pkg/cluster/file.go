package cluster

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"sigs.k8s.io/yaml"

	"github.com/shoal-project/shoal/pkg/models"
)

// StateFile is the on-disk description of a cluster snapshot, in yaml or
// json. Field names follow the models' json tags. An index listed without a
// routing entry gets a generated table with every primary started, so simple
// fixtures stay simple; list an explicit routing entry to pin shard states.
type StateFile struct {
	Version   uint64                 `json:"Version,omitempty"`
	Nodes     []models.NodeInfo      `json:"Nodes,omitempty"`
	Indices   []models.IndexMetadata `json:"Indices,omitempty"`
	Routing   []models.IndexRouting  `json:"Routing,omitempty"`
	Jobs      []*models.Job          `json:"Jobs,omitempty"`
	Datafeeds []*models.Datafeed     `json:"Datafeeds,omitempty"`
	JobTasks  []*models.JobTask      `json:"JobTasks,omitempty"`
}

// Validate checks the state file for internal consistency.
func (f *StateFile) Validate() error {
	var mErr multierror.Error

	indexNames := make(map[string]struct{}, len(f.Indices))
	for _, meta := range f.Indices {
		if meta.Name == "" {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("index with empty name"))
			continue
		}
		indexNames[meta.Name] = struct{}{}
	}
	for _, routing := range f.Routing {
		if _, ok := indexNames[routing.Index]; !ok {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("routing for unknown index %q", routing.Index))
		}
	}
	for _, job := range f.Jobs {
		if err := job.Validate(); err != nil {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("job %q: %w", job.ID, err))
		}
	}
	for _, datafeed := range f.Datafeeds {
		if err := datafeed.Validate(); err != nil {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("datafeed %q: %w", datafeed.ID, err))
		}
	}
	for _, task := range f.JobTasks {
		if task.JobID == "" {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("job task with empty job ID"))
		}
	}
	return mErr.ErrorOrNil()
}

// Snapshot builds the immutable snapshot the file describes.
func (f *StateFile) Snapshot() *Snapshot {
	builder := NewBuilder().WithVersion(f.Version)
	for _, node := range f.Nodes {
		builder.Node(node)
	}

	explicitRouting := make(map[string]struct{}, len(f.Routing))
	for _, routing := range f.Routing {
		explicitRouting[routing.Index] = struct{}{}
		builder.Routing(routing)
	}
	for _, meta := range f.Indices {
		builder.Index(meta)
		if _, ok := explicitRouting[meta.Name]; !ok {
			builder.Routing(defaultRouting(meta))
		}
	}

	for _, job := range f.Jobs {
		builder.Job(job)
	}
	for _, datafeed := range f.Datafeeds {
		builder.Datafeed(datafeed)
	}
	for _, task := range f.JobTasks {
		builder.JobTask(task)
	}
	return builder.Build()
}

// defaultRouting generates a fully started routing table for an index.
func defaultRouting(meta models.IndexMetadata) models.IndexRouting {
	numShards := meta.NumShards
	if numShards <= 0 {
		numShards = 1
	}
	routing := models.IndexRouting{Index: meta.Name}
	for shard := 0; shard < numShards; shard++ {
		routing.Shards = append(routing.Shards, models.ShardRouting{
			Shard:   shard,
			Primary: true,
			State:   models.ShardStateStarted,
		})
	}
	return routing
}

// LoadStateFile reads, validates and builds a snapshot from a yaml or json
// state file.
func LoadStateFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var file StateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state file %s: %w", path, err)
	}
	return file.Snapshot(), nil
}
