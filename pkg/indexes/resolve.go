package indexes

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Resolution is the outcome of expanding a datafeed's index patterns against
// the local open-index catalog.
type Resolution struct {
	// Concrete is the ordered, de-duplicated list of local index names the
	// patterns expanded to: pattern order first, lexicographic within a
	// pattern, first occurrence kept on duplicates.
	Concrete []string

	// HasLocal is true when at least one pattern was local
	HasLocal bool

	// FirstUnmatched is the first local pattern that expanded to nothing,
	// empty when every local pattern matched something
	FirstUnmatched string
}

// Empty returns true when no local pattern matched any index.
func (r Resolution) Empty() bool {
	return len(r.Concrete) == 0
}

// Resolve expands the given patterns against the open local indices. Remote
// patterns are skipped entirely. The only error case is a malformed glob
// pattern, which is a configuration mistake rather than a decision outcome.
func Resolve(patterns []string, openIndices []string) (Resolution, error) {
	catalog := slices.Clone(openIndices)
	slices.Sort(catalog)

	res := Resolution{}
	seen := make(map[string]struct{}, len(catalog))
	for _, pattern := range patterns {
		if IsRemote(pattern) {
			continue
		}
		res.HasLocal = true

		matched := false
		for _, name := range catalog {
			ok, err := Match(pattern, name)
			if err != nil {
				return Resolution{}, fmt.Errorf("invalid index pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
			matched = true
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				res.Concrete = append(res.Concrete, name)
			}
		}
		if !matched && res.FirstUnmatched == "" {
			res.FirstUnmatched = pattern
		}
	}
	return res, nil
}
