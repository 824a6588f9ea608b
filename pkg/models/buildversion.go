package models

import (
	"fmt"
	"time"
)

// BuildVersionInfo identifies the code a shoal binary was built from.
type BuildVersionInfo struct {
	Major      string    `json:"Major,omitempty"`
	Minor      string    `json:"Minor,omitempty"`
	GitVersion string    `json:"GitVersion"`
	GitCommit  string    `json:"GitCommit"`
	BuildDate  time.Time `json:"BuildDate"`
	GOOS       string    `json:"GOOS"`
	GOARCH     string    `json:"GOARCH"`
}

func (v *BuildVersionInfo) String() string {
	return fmt.Sprintf("%s (%s/%s)", v.GitVersion, v.GOOS, v.GOARCH)
}
