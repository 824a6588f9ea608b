//go:build unit || !integration

package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/suite"

	cmdtesting "github.com/shoal-project/shoal/cmd/testing"
	"github.com/shoal-project/shoal/cmd/util/output"
	"github.com/shoal-project/shoal/pkg/models"
)

type VersionSuite struct {
	cmdtesting.BaseSuite
}

func TestVersionSuite(t *testing.T) {
	suite.Run(t, new(VersionSuite))
}

func (s *VersionSuite) TestVersionJSONOutput() {
	_, out, err := cmdtesting.ExecuteTestCobraCommand("version",
		"--output", string(output.JSONFormat),
	)
	s.Require().NoError(err)

	info := &models.BuildVersionInfo{}
	s.Require().NoError(json.Unmarshal([]byte(out), info))
	s.Equal("v0.0.0", info.GitVersion, "development builds report the default version")
	s.Equal(runtime.GOOS, info.GOOS)
	s.Equal(runtime.GOARCH, info.GOARCH)
}

func (s *VersionSuite) TestVersionTableOutput() {
	_, out, err := cmdtesting.ExecuteTestCobraCommand("version",
		"--no-style", "--hide-header",
	)
	s.Require().NoError(err)
	s.Contains(out, "v0.0.0")
	s.Contains(out, runtime.GOOS+"/"+runtime.GOARCH)
}
