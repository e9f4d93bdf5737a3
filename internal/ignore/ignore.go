// Package ignore filters scan paths with gitignore-syntax patterns read
// from a .lockhoundignore file.
package ignore

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DefaultFile is the exclusion file looked up at the scan root.
const DefaultFile = ".lockhoundignore"

type Matcher struct{ ps []gitignore.Pattern }

// Load reads patterns from path. A missing file yields an empty matcher,
// not an error.
func Load(path string) (Matcher, error) {
	var m Matcher
	data, err := os.ReadFile(path)
	if err != nil {
		return m, nil
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.ps = append(m.ps, gitignore.ParsePattern(line, nil))
	}
	return m, nil
}

// Match reports whether the slash-separated relative path is excluded.
func (m Matcher) Match(p string) bool {
	for _, pat := range m.ps {
		if pat.Match(strings.Split(p, "/"), false) == gitignore.Exclude {
			return true
		}
	}
	return false
}
