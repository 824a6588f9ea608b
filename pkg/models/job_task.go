package models

// JobTask is the cluster-wide record of where a job is currently (or was
// last) executing. AllocationID increases monotonically every time the task
// is reassigned; Status carries the state the executing node last confirmed,
// stamped with the allocation id that confirmation was made under.
type JobTask struct {
	// JobID is the job this task executes
	JobID string `json:"JobID"`

	// NodeID is the node the task is currently assigned to. Empty while the
	// task awaits allocation.
	NodeID string `json:"NodeID,omitempty"`

	// AllocationID identifies the current assignment of the task
	AllocationID int64 `json:"AllocationID"`

	// Status is the last status confirmed by the executing node, or nil if
	// the node has not reported since the task was created
	Status *JobTaskStatus `json:"Status,omitempty"`
}

// JobTaskStatus is the state report an executing node publishes for its task.
type JobTaskStatus struct {
	// State is the job lifecycle state the node reported
	State JobState `json:"State"`

	// AllocationID is the task allocation the report was made under
	AllocationID int64 `json:"AllocationID"`
}

// StatusStale returns true when the reported status belongs to an earlier
// allocation of the task, i.e. the executing node has not yet confirmed the
// current assignment.
func (t *JobTask) StatusStale() bool {
	return t.Status != nil && t.Status.AllocationID < t.AllocationID
}

// EffectiveState is the job state to judge the task by. A task whose node has
// not reported yet is still coming up.
func (t *JobTask) EffectiveState() JobState {
	if t.Status == nil {
		return JobStateOpening
	}
	return t.Status.State
}

// Copy returns a deep copy of the job task
func (t *JobTask) Copy() *JobTask {
	if t == nil {
		return nil
	}
	nt := new(JobTask)
	*nt = *t
	if t.Status != nil {
		status := *t.Status
		nt.Status = &status
	}
	return nt
}
