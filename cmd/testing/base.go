package cmdtesting

import (
	"github.com/stretchr/testify/suite"

	"github.com/shoal-project/shoal/pkg/logger"
)

// BaseSuite is the common ground for command test suites.
type BaseSuite struct {
	suite.Suite
}

// Before each test
func (s *BaseSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
}
