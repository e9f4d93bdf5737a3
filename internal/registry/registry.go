// Package registry holds the set of package releases a scan checks
// lockfile entries against. The set is immutable once built and safe to
// share across concurrent parsing workers.
package registry

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/accrava/lockhound/internal/types"
)

//go:embed compromised_packages.txt
var embeddedList string

// Registry indexes MatchSpecs by package name for O(1) lookups.
type Registry struct {
	byName map[string]map[string]bool
	specs  []types.MatchSpec
}

// New builds a registry from an explicit list of specs. Duplicate
// (name, version) pairs are collapsed.
func New(specs []types.MatchSpec) *Registry {
	r := &Registry{byName: make(map[string]map[string]bool)}
	for _, s := range specs {
		if s.Name == "" || s.Version == "" {
			continue
		}
		if r.byName[s.Name] == nil {
			r.byName[s.Name] = make(map[string]bool)
		}
		if r.byName[s.Name][s.Version] {
			continue
		}
		r.byName[s.Name][s.Version] = true
		r.specs = append(r.specs, s)
	}
	return r
}

// Default returns the registry built from the embedded package list.
func Default() *Registry {
	r, err := Parse(strings.NewReader(embeddedList))
	if err != nil {
		// embedded data is validated by tests; an error here is a build defect
		panic(fmt.Sprintf("registry: embedded list: %v", err))
	}
	return r
}

// LoadFile reads a name@version list from disk, replacing the embedded set.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match list: %w", err)
	}
	defer f.Close()
	r, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse match list %s: %w", path, err)
	}
	return r, nil
}

// Parse reads name@version lines. Blank lines and #-comments are skipped.
// Scoped names keep their @ sigil; the version is everything after the
// last @.
func Parse(r io.Reader) (*Registry, error) {
	var specs []types.MatchSpec
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		at := strings.LastIndex(line, "@")
		if at <= 0 { // 0 would mean a bare scope sigil with no name
			return nil, fmt.Errorf("line %d: %q is not name@version", lineNo, line)
		}
		name, version := line[:at], line[at+1:]
		if name == "" || version == "" {
			return nil, fmt.Errorf("line %d: %q is not name@version", lineNo, line)
		}
		specs = append(specs, types.MatchSpec{Name: name, Version: version})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(specs), nil
}

// Match reports whether (name, version) is in the set. Exact, case
// sensitive equality on both fields.
func (r *Registry) Match(name, version string) bool {
	versions, ok := r.byName[name]
	if !ok {
		return false
	}
	return versions[version]
}

// Versions returns the flagged versions for name, sorted. Nil when the
// name is not in the set.
func (r *Registry) Versions(name string) []string {
	versions, ok := r.byName[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(versions))
	for v := range versions {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Specs returns all entries in insertion order.
func (r *Registry) Specs() []types.MatchSpec {
	out := make([]types.MatchSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Len returns the number of distinct (name, version) pairs.
func (r *Registry) Len() int { return len(r.specs) }
