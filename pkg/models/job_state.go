package models

import (
	"fmt"
	"strings"
)

// JobState is the lifecycle state of an analysis job. The lowercase renderings
// are part of the explanation message contract and must not change.
type JobState int

const (
	jobStateUndefined JobState = iota
	JobStateOpening
	JobStateOpened
	JobStateClosing
	JobStateClosed
	JobStateFailed
)

var strJobStateArray = [...]string{
	jobStateUndefined: "",
	JobStateOpening:   "opening",
	JobStateOpened:    "opened",
	JobStateClosing:   "closing",
	JobStateClosed:    "closed",
	JobStateFailed:    "failed",
}

func (s JobState) String() string {
	if s < 0 || int(s) >= len(strJobStateArray) {
		return ""
	}
	return strJobStateArray[s]
}

// IsAnyOf returns true if the state matches any of the given states
func (s JobState) IsAnyOf(states ...JobState) bool {
	for _, state := range states {
		if s == state {
			return true
		}
	}
	return false
}

func (s JobState) IsValid() bool {
	return s >= JobStateOpening && s <= JobStateFailed
}

func ParseJobState(str string) (JobState, error) {
	for state := JobStateOpening; state <= JobStateFailed; state++ {
		if strings.EqualFold(state.String(), strings.TrimSpace(str)) {
			return state, nil
		}
	}
	return jobStateUndefined, fmt.Errorf("invalid job state: %s", str)
}

func (s JobState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *JobState) UnmarshalText(text []byte) (err error) {
	name := string(text)
	*s, err = ParseJobState(name)
	return
}
