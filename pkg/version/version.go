package version

import (
	"runtime"
	"strconv"
	"time"

	"github.com/Masterminds/semver"
	"github.com/rs/zerolog/log"

	"github.com/shoal-project/shoal/pkg/models"
)

// These come from -ldflags settings at build time. The defaults describe
// an unofficial development build.
var (
	GITVERSION = "v0.0.0"
	GITCOMMIT  = ""
	BUILDDATE  = "1970-01-01T00:00:00Z"
)

// Get returns the overall codebase version. It's for detecting
// what code a binary was built from.
func Get() *models.BuildVersionInfo {
	versionInfo := &models.BuildVersionInfo{}
	s, err := semver.NewVersion(GITVERSION)
	if err != nil {
		log.Fatal().Msgf("Could not parse GITVERSION during build - %s", GITVERSION)
	}
	versionInfo.GitVersion = GITVERSION
	versionInfo.Major = strconv.FormatInt(s.Major(), 10) //nolint:gomnd // base10, magic number appropriate
	versionInfo.Minor = strconv.FormatInt(s.Minor(), 10) //nolint:gomnd // base10, magic number appropriate
	versionInfo.GitCommit = GITCOMMIT

	buildDate, err := time.Parse(time.RFC3339, BUILDDATE)
	if err != nil {
		log.Fatal().Msgf("Could not parse BUILDDATE during build - %s", BUILDDATE)
	}
	versionInfo.BuildDate = buildDate
	versionInfo.GOOS = runtime.GOOS
	versionInfo.GOARCH = runtime.GOARCH

	return versionInfo
}
