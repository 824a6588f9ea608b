package models

import (
	"errors"

	"github.com/hashicorp/go-multierror"

	"github.com/shoal-project/shoal/pkg/lib/validate"
)

// Job is the catalog entry for a long-running analysis unit that a datafeed
// feeds. Its lifecycle state lives on the job's task record, not here: the
// catalog only says the job exists.
type Job struct {
	// ID is the unique identifier of the job
	ID string `json:"ID"`

	// Description is an optional human readable description of the job
	Description string `json:"Description,omitempty"`
}

// Copy returns a deep copy of the job
func (j *Job) Copy() *Job {
	if j == nil {
		return nil
	}
	nj := new(Job)
	*nj = *j
	return nj
}

// Validate is used to check a job for reasonable configuration
func (j *Job) Validate() error {
	var mErr multierror.Error
	if validate.IsBlank(j.ID) {
		mErr.Errors = append(mErr.Errors, errors.New("missing job ID"))
	} else if validate.ContainsNull(j.ID) {
		mErr.Errors = append(mErr.Errors, errors.New("job ID contains null character"))
	}
	return mErr.ErrorOrNil()
}
