package lockfile

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/accrava/lockhound/internal/types"
)

// npmLock models the slice of package-lock.json (v2/v3) we need: the
// "packages" map keyed by install path.
type npmLock struct {
	LockfileVersion int                   `json:"lockfileVersion"`
	Packages        map[string]npmPackage `json:"packages"`
}

type npmPackage struct {
	Version string `json:"version"`
	Link    bool   `json:"link"`
}

// ParseNPM parses a package-lock.json. Invalid JSON or a missing
// "packages" mapping is a ParseError. Map iteration is sorted so repeated
// scans emit records in the same order.
func ParseNPM(path string, data []byte) ([]types.DependencyRecord, []string, error) {
	var lock npmLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, nil, &ParseError{Path: path, Kind: types.KindNPM, Err: err}
	}
	if lock.Packages == nil {
		return nil, nil, &ParseError{Path: path, Kind: types.KindNPM, Err: fmt.Errorf("no \"packages\" mapping")}
	}

	keys := make([]string, 0, len(lock.Packages))
	for k := range lock.Packages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var records []types.DependencyRecord
	var warnings []string
	for _, key := range keys {
		if key == "" {
			continue // the root project entry
		}
		name := npmKeyName(key)
		if name == "" {
			// workspace folders and other non-node_modules keys are not
			// dependency entries
			continue
		}
		entry := lock.Packages[key]
		if entry.Link {
			continue
		}
		if entry.Version == "" {
			warnings = append(warnings, fmt.Sprintf("entry %q has no version", key))
			continue
		}
		records = append(records, types.DependencyRecord{
			PackageKey: key,
			Name:       name,
			Version:    entry.Version,
			SourceFile: path,
		})
	}
	return records, warnings, nil
}

// npmKeyName extracts the package name from an install path like
// "node_modules/foo" or "node_modules/foo/node_modules/@scope/bar".
// Matching is on whole path segments, so "not_node_modules/foo" or a key
// ending in "barfoo" never picks up a name by accident.
func npmKeyName(key string) string {
	segs := strings.Split(key, "/")
	last := -1
	for i, s := range segs {
		if s == "node_modules" {
			last = i
		}
	}
	if last < 0 || last == len(segs)-1 {
		return ""
	}
	rest := segs[last+1:]
	switch {
	case len(rest) == 1 && rest[0] != "" && !strings.HasPrefix(rest[0], "@"):
		return rest[0]
	case len(rest) == 2 && strings.HasPrefix(rest[0], "@") && rest[1] != "":
		return rest[0] + "/" + rest[1]
	}
	return ""
}
