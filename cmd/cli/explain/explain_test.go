//go:build unit || !integration

package explain_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	cmdtesting "github.com/shoal-project/shoal/cmd/testing"
	"github.com/shoal-project/shoal/cmd/util/output"
	"github.com/shoal-project/shoal/pkg/selector"
)

// stateYaml describes a cluster with one placeable datafeed (feed-1) and one
// whose index pattern matches nothing (feed-2).
const stateYaml = `
Nodes:
  - NodeID: node-0
    Address: 127.0.0.1:9300
Indices:
  - Name: logs
    State: open
    NumShards: 1
Jobs:
  - ID: job-1
  - ID: job-2
Datafeeds:
  - ID: feed-1
    JobID: job-1
    Indexes: ["logs"]
  - ID: feed-2
    JobID: job-2
    Indexes: ["metrics-*"]
JobTasks:
  - JobID: job-1
    NodeID: node-0
    AllocationID: 1
    Status:
      State: opened
      AllocationID: 1
  - JobID: job-2
    NodeID: node-0
    AllocationID: 1
    Status:
      State: opened
      AllocationID: 1
`

type explainRow struct {
	DatafeedID  string `json:"DatafeedID"`
	JobID       string `json:"JobID"`
	Indexes     string `json:"Indexes"`
	NodeID      string `json:"NodeID,omitempty"`
	Explanation string `json:"Explanation,omitempty"`
}

type ExplainSuite struct {
	cmdtesting.BaseSuite
	statePath string
}

func TestExplainSuite(t *testing.T) {
	suite.Run(t, new(ExplainSuite))
}

func (s *ExplainSuite) SetupTest() {
	s.BaseSuite.SetupTest()
	s.statePath = filepath.Join(s.T().TempDir(), "state.yaml")
	s.Require().NoError(os.WriteFile(s.statePath, []byte(stateYaml), 0644))
}

func (s *ExplainSuite) TestExplainJSONOutput() {
	_, out, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", s.statePath,
		"--output", string(output.JSONFormat),
	)
	s.Require().NoError(err)

	var rows []explainRow
	s.Require().NoError(json.Unmarshal([]byte(out), &rows))
	s.Require().Len(rows, 2)

	s.Equal("feed-1", rows[0].DatafeedID)
	s.Equal("node-0", rows[0].NodeID)
	s.Empty(rows[0].Explanation)

	s.Equal("feed-2", rows[1].DatafeedID)
	s.Empty(rows[1].NodeID)
	s.Equal("cannot start datafeed [feed-2] because index [metrics-*] "+
		"does not exist, is closed, or is still initializing.", rows[1].Explanation)
}

func (s *ExplainSuite) TestExplainSingleDatafeed() {
	_, out, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", s.statePath,
		"--datafeed", "feed-1",
		"--output", string(output.JSONFormat),
	)
	s.Require().NoError(err)

	var rows []explainRow
	s.Require().NoError(json.Unmarshal([]byte(out), &rows))
	s.Require().Len(rows, 1)
	s.Equal("feed-1", rows[0].DatafeedID)
	s.Equal("job-1", rows[0].JobID)
	s.Equal("logs", rows[0].Indexes)
}

func (s *ExplainSuite) TestExplainUnknownDatafeed() {
	_, _, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", s.statePath,
		"--datafeed", "feed-9",
	)
	s.Require().Error(err)
	var notFound selector.ErrDatafeedNotFound
	s.True(errors.As(err, &notFound))
}

func (s *ExplainSuite) TestExplainStrictSurfacesNoNodeError() {
	_, _, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", s.statePath,
		"--strict",
	)
	s.Require().Error(err)

	var noNode selector.ErrNoNodeFound
	s.Require().True(errors.As(err, &noNode))
	s.Equal("No node found to start datafeed [feed-2], allocation explanation "+
		"[cannot start datafeed [feed-2] because index [metrics-*] does not exist, is closed, or is still initializing.]",
		err.Error())
}

func (s *ExplainSuite) TestExplainStrictPassesWhenAllPlaceable() {
	_, _, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", s.statePath,
		"--datafeed", "feed-1",
		"--strict",
	)
	s.NoError(err)
}

func (s *ExplainSuite) TestExplainTableOutput() {
	_, out, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", s.statePath,
		"--no-style", "--hide-header",
	)
	s.Require().NoError(err)
	s.Contains(out, "feed-1")
	s.Contains(out, "node-0")
	s.Contains(out, "feed-2")
}

func (s *ExplainSuite) TestExplainRequiresStateFile() {
	_, _, err := cmdtesting.ExecuteTestCobraCommand("explain")
	s.Require().Error(err)
	s.Contains(err.Error(), "--state is required")
}

func (s *ExplainSuite) TestExplainMissingStateFile() {
	_, _, err := cmdtesting.ExecuteTestCobraCommand("explain",
		"--state", filepath.Join(s.T().TempDir(), "absent.yaml"),
	)
	s.Require().Error(err)
	s.Contains(err.Error(), "does not exist")
}
