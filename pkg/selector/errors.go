package selector

import (
	"fmt"
)

// ErrDatafeedNotFound is returned when the snapshot has no datafeed with the requested id
type ErrDatafeedNotFound struct {
	datafeedID string
}

func NewErrDatafeedNotFound(datafeedID string) ErrDatafeedNotFound {
	return ErrDatafeedNotFound{datafeedID: datafeedID}
}

func (e ErrDatafeedNotFound) Error() string {
	return fmt.Errorf("datafeed not found for datafeedID: %s", e.datafeedID).Error()
}

// ErrJobNotFound is returned when a datafeed references a job that is absent
// from the snapshot's job catalog
type ErrJobNotFound struct {
	jobID string
}

func NewErrJobNotFound(jobID string) ErrJobNotFound {
	return ErrJobNotFound{jobID: jobID}
}

func (e ErrJobNotFound) Error() string {
	return fmt.Errorf("job not found for jobID: %s", e.jobID).Error()
}

// ErrNoNodeFound is returned by EnsureAssignable when the decision produced no
// node. The message embeds the decision's explanation verbatim; operators and
// tests match on it.
type ErrNoNodeFound struct {
	datafeedID  string
	explanation string
}

func NewErrNoNodeFound(datafeedID string, explanation string) ErrNoNodeFound {
	return ErrNoNodeFound{datafeedID: datafeedID, explanation: explanation}
}

func (e ErrNoNodeFound) Error() string {
	return fmt.Errorf("No node found to start datafeed [%s], allocation explanation [%s]", e.datafeedID, e.explanation).Error()
}

// Explanation returns the underlying assignment explanation without the
// surrounding error framing.
func (e ErrNoNodeFound) Explanation() string {
	return e.explanation
}
