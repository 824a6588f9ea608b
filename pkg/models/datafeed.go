package models

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"

	"github.com/shoal-project/shoal/pkg/lib/validate"
)

// Datafeed is a configured streaming ingestion task bound to one job and one
// or more source index patterns. Patterns are kept in submission order;
// duplicates are allowed and irrelevant to selection.
type Datafeed struct {
	// ID is the unique identifier of the datafeed
	ID string `json:"ID"`

	// JobID is the job this datafeed delivers data to
	JobID string `json:"JobID"`

	// Indexes is the ordered list of source index patterns. A pattern is
	// either a concrete name, a glob (`fo*`), or a remote reference
	// (`cluster:pattern`) resolved by the remote cluster instead of here.
	Indexes []string `json:"Indexes"`
}

// Normalize ensures nil and empty pattern lists are treated the same
func (d *Datafeed) Normalize() {
	if d.Indexes == nil {
		d.Indexes = make([]string, 0)
	}
}

// Copy returns a deep copy of the datafeed
func (d *Datafeed) Copy() *Datafeed {
	if d == nil {
		return nil
	}
	nd := new(Datafeed)
	*nd = *d
	nd.Indexes = slices.Clone(d.Indexes)
	return nd
}

// Validate is used to check a datafeed for reasonable configuration
func (d *Datafeed) Validate() error {
	var mErr multierror.Error
	if validate.IsBlank(d.ID) {
		mErr.Errors = append(mErr.Errors, errors.New("missing datafeed ID"))
	} else if validate.ContainsNull(d.ID) {
		mErr.Errors = append(mErr.Errors, errors.New("datafeed ID contains null character"))
	}
	if validate.IsBlank(d.JobID) {
		mErr.Errors = append(mErr.Errors, errors.New("missing job ID"))
	}
	if len(d.Indexes) == 0 {
		mErr.Errors = append(mErr.Errors, errors.New("missing source indexes"))
	}
	for i, pattern := range d.Indexes {
		if validate.IsBlank(pattern) {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("index pattern %d is blank", i))
		}
	}
	return mErr.ErrorOrNil()
}
