package mock

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/shoal-project/shoal/pkg/models"
)

func Node() models.NodeInfo {
	return models.NodeInfo{
		NodeID:  uuid.NewString(),
		Address: "127.0.0.1:4222",
		Labels:  map[string]string{"zone": "test"},
	}
}

func Job() *models.Job {
	job := &models.Job{
		ID:          uuid.NewString(),
		Description: "test job",
	}
	if err := job.Validate(); err != nil {
		panic(err)
	}
	return job
}

func Datafeed(jobID string) *models.Datafeed {
	datafeed := &models.Datafeed{
		ID:      uuid.NewString(),
		JobID:   jobID,
		Indexes: []string{"logs-*"},
	}
	datafeed.Normalize()
	if err := datafeed.Validate(); err != nil {
		panic(err)
	}
	return datafeed
}

// JobTask returns a non-stale task for the job: the reported status matches
// the task's allocation id.
func JobTask(jobID string, nodeID string, state models.JobState) *models.JobTask {
	return &models.JobTask{
		JobID:        jobID,
		NodeID:       nodeID,
		AllocationID: 1,
		Status:       &models.JobTaskStatus{State: state, AllocationID: 1},
	}
}

// OpeningJobTask returns a task that has been allocated but has not reported
// a status yet.
func OpeningJobTask(jobID string, nodeID string) *models.JobTask {
	return &models.JobTask{
		JobID:        jobID,
		NodeID:       nodeID,
		AllocationID: 1,
	}
}

// StaleJobTask returns a task whose reported status lags behind the task's
// current allocation id.
func StaleJobTask(jobID string, nodeID string) *models.JobTask {
	return &models.JobTask{
		JobID:        jobID,
		NodeID:       nodeID,
		AllocationID: 2,
		Status:       &models.JobTaskStatus{State: models.JobStateOpened, AllocationID: 1},
	}
}

func OpenIndex(name string, numShards int) models.IndexMetadata {
	return models.IndexMetadata{
		Name:      name,
		State:     models.IndexStateOpen,
		NumShards: numShards,
	}
}

// StartedRouting returns a routing table with every primary shard started.
func StartedRouting(index string, numShards int) models.IndexRouting {
	states := make([]models.ShardState, numShards)
	for i := range states {
		states[i] = models.ShardStateStarted
	}
	return RoutingWithStates(index, states...)
}

// RoutingWithStates returns a routing table with one primary shard per given
// state. Unassigned shards carry no node.
func RoutingWithStates(index string, states ...models.ShardState) models.IndexRouting {
	shards := make([]models.ShardRouting, 0, len(states))
	for i, state := range states {
		nodeID := fmt.Sprintf("node-%d", i)
		if state == models.ShardStateUnassigned {
			nodeID = ""
		}
		shards = append(shards, models.ShardRouting{
			Shard:   i,
			Primary: true,
			State:   state,
			NodeID:  nodeID,
		})
	}
	return models.IndexRouting{Index: index, Shards: shards}
}
