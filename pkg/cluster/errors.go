package cluster

import (
	"fmt"
)

// ErrJobTaskNotFound is returned when a status update targets a job with no
// task record in the registry.
type ErrJobTaskNotFound struct {
	jobID string
}

func NewErrJobTaskNotFound(jobID string) ErrJobTaskNotFound {
	return ErrJobTaskNotFound{jobID: jobID}
}

func (e ErrJobTaskNotFound) Error() string {
	return fmt.Sprintf("no task record found for job: %s", e.jobID)
}
