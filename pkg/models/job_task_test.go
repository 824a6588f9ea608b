//go:build unit || !integration

package models_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/shoal-project/shoal/pkg/models"
)

type JobTaskTestSuite struct {
	suite.Suite
}

func TestJobTaskTestSuite(t *testing.T) {
	suite.Run(t, new(JobTaskTestSuite))
}

func (s *JobTaskTestSuite) TestStatusStale() {
	testCases := []struct {
		name  string
		task  models.JobTask
		stale bool
	}{
		{
			name:  "no status reported yet",
			task:  models.JobTask{JobID: "job-1", AllocationID: 3},
			stale: false,
		},
		{
			name: "status confirmed for current allocation",
			task: models.JobTask{
				JobID:        "job-1",
				AllocationID: 3,
				Status:       &models.JobTaskStatus{State: models.JobStateOpened, AllocationID: 3},
			},
			stale: false,
		},
		{
			name: "status lags current allocation",
			task: models.JobTask{
				JobID:        "job-1",
				AllocationID: 3,
				Status:       &models.JobTaskStatus{State: models.JobStateOpened, AllocationID: 2},
			},
			stale: true,
		},
		{
			name: "status from ahead of the task is not stale",
			task: models.JobTask{
				JobID:        "job-1",
				AllocationID: 3,
				Status:       &models.JobTaskStatus{State: models.JobStateOpened, AllocationID: 4},
			},
			stale: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.stale, tc.task.StatusStale())
		})
	}
}

func (s *JobTaskTestSuite) TestEffectiveState() {
	task := models.JobTask{JobID: "job-1", AllocationID: 1}
	s.Equal(models.JobStateOpening, task.EffectiveState())

	task.Status = &models.JobTaskStatus{State: models.JobStateFailed, AllocationID: 1}
	s.Equal(models.JobStateFailed, task.EffectiveState())
}

func (s *JobTaskTestSuite) TestCopy() {
	task := &models.JobTask{
		JobID:        "job-1",
		NodeID:       "node-1",
		AllocationID: 2,
		Status:       &models.JobTaskStatus{State: models.JobStateOpened, AllocationID: 2},
	}

	cp := task.Copy()
	s.Equal(task, cp)

	cp.Status.AllocationID = 1
	s.EqualValues(2, task.Status.AllocationID, "copy must not share status with the original")
}
