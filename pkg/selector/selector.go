// Package selector decides which node, if any, a datafeed should run on,
// given an immutable snapshot of cluster state. The decision is a pure
// function of the snapshot: transient non-assignability (missing index,
// unready shards, job not opened, stale task status) is returned as data on
// the Assignment, never as an error. Explanation texts are observable
// contract; callers and operators match on them.
package selector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/shoal-project/shoal/pkg/cluster"
	"github.com/shoal-project/shoal/pkg/models"
	"github.com/shoal-project/shoal/pkg/telemetry"
)

// SelectNode runs the assignment decision for the given datafeed against the
// snapshot. It returns an error only for unresolvable input: an unknown
// datafeed id, a datafeed whose job is absent from the job catalog, or a
// malformed index pattern. Every other outcome is an Assignment value.
//
// Guards are evaluated in a fixed order so that the explanation is stable
// when several problems coexist: index resolution, then primary shard
// readiness, then job task state. The first failing guard wins.
func SelectNode(ctx context.Context, snap *cluster.Snapshot, datafeedID string) (models.Assignment, error) {
	stop := telemetry.Timer(ctx, decisionDuration)
	defer stop()

	datafeed, ok := snap.Datafeed(datafeedID)
	if !ok {
		return models.Assignment{}, NewErrDatafeedNotFound(datafeedID)
	}
	job, ok := snap.Job(datafeed.JobID)
	if !ok {
		return models.Assignment{}, NewErrJobNotFound(datafeed.JobID)
	}

	resolution, err := snap.ResolveIndices(datafeed.Indexes)
	if err != nil {
		return models.Assignment{}, err
	}
	if resolution.HasLocal && resolution.Empty() {
		return unassigned(ctx, fmt.Sprintf(
			"cannot start datafeed [%s] because index [%s] does not exist, is closed, or is still initializing.",
			datafeedID, resolution.FirstUnmatched)), nil
	}

	for _, index := range resolution.Concrete {
		routing, ok := snap.Routing(index)
		if !ok || !routing.AllPrimaryShardsActive() {
			return unassigned(ctx, fmt.Sprintf(
				"cannot start datafeed [%s] because index [%s] does not have all primary shards active yet.",
				datafeedID, index)), nil
		}
	}

	task, ok := snap.JobTask(job.ID)
	if !ok {
		// No task record means the job has not been opened yet. Report it
		// with the same message an explicitly closed job would produce.
		return unassigned(ctx, jobStateExplanation(datafeedID, job.ID, models.JobStateClosed)), nil
	}
	if task.StatusStale() {
		return unassigned(ctx, fmt.Sprintf(
			"cannot start datafeed [%s], job [%s] status is stale",
			datafeedID, job.ID)), nil
	}
	if state := task.EffectiveState(); !state.IsAnyOf(models.JobStateOpening, models.JobStateOpened) {
		return unassigned(ctx, jobStateExplanation(datafeedID, job.ID, state)), nil
	}

	// The task's node may still be empty while the job itself awaits
	// allocation. That is a success value, not a failure: there is nothing
	// for the caller to act on beyond waiting for the next snapshot.
	assignment := models.NewAssignment(task.NodeID)
	decisionCount.Add(ctx, 1, outcomeAttribute(assignment.IsAssigned()))
	return assignment, nil
}

// EnsureAssignable runs the same decision as SelectNode and converts a
// no-node outcome into ErrNoNodeFound, embedding the explanation verbatim.
// It is the pre-flight check callers run before creating a datafeed task;
// a nil return means the task may be created now.
func EnsureAssignable(ctx context.Context, snap *cluster.Snapshot, datafeedID string) error {
	assignment, err := SelectNode(ctx, snap, datafeedID)
	if err != nil {
		return err
	}
	if assignment.Explanation != "" {
		noNode := NewErrNoNodeFound(datafeedID, assignment.Explanation)
		log.Ctx(ctx).Debug().Msg(noNode.Error())
		return noNode
	}
	return nil
}

func unassigned(ctx context.Context, explanation string) models.Assignment {
	log.Ctx(ctx).Debug().Msg(explanation)
	decisionCount.Add(ctx, 1, outcomeAttribute(false))
	return models.NoAssignment(explanation)
}

func jobStateExplanation(datafeedID string, jobID string, state models.JobState) string {
	return fmt.Sprintf(
		"cannot start datafeed [%s], because job's [%s] state is [%s] while state [opened] is required",
		datafeedID, jobID, state)
}
