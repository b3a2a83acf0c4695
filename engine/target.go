package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Target is what the cracking search compares candidate digests against:
// either one digest (recover the plaintext) or a set of digests (count the
// matches). Digests are hex SHA-1, normalized to lowercase on the way in.
type Target struct {
	digest string
	set    map[string]struct{}
}

// SingleTarget builds a target for recovering one plaintext.
func SingleTarget(digest string) Target {
	return Target{digest: strings.ToLower(digest)}
}

// SetTarget builds a set-membership target from a list of digests.
func SetTarget(digests []string) Target {
	set := make(map[string]struct{}, len(digests))
	for _, d := range digests {
		set[strings.ToLower(d)] = struct{}{}
	}
	return Target{set: set}
}

// IsSet reports whether the target is a digest set rather than a single
// digest.
func (t Target) IsSet() bool {
	return t.set != nil
}

// Size returns the number of distinct digests in the target.
func (t Target) Size() int {
	if t.set != nil {
		return len(t.set)
	}
	return 1
}

// LoadHashSet reads a JSON list of hex digests into a set target.
func LoadHashSet(path string) (Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Target{}, err
	}

	var digests []string
	if err := json.Unmarshal(data, &digests); err != nil {
		return Target{}, fmt.Errorf("hash list %s: %w", path, err)
	}

	return SetTarget(digests), nil
}
