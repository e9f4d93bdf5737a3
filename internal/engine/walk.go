package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/accrava/lockhound/internal/ignore"
	"github.com/accrava/lockhound/internal/lockfile"
	"github.com/accrava/lockhound/internal/types"
)

// Target is one lockfile discovered under the scan root.
type Target struct {
	Path string // relative to the root, slash-separated
	Abs  string
	Kind types.Kind
}

// Discover walks root and collects recognized lockfiles in deterministic
// traversal order. Vendored trees are skipped: a lockfile inside
// node_modules belongs to an installed dependency, not to the audited
// project.
func Discover(root string, ign ignore.Matcher) ([]Target, error) {
	var targets []Target
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			name := d.Name()
			if p != root && (strings.HasPrefix(name, ".git") || name == "node_modules" || name == ".pnpm-store") {
				return filepath.SkipDir
			}
			return nil
		}
		kind := lockfile.Detect(p)
		if kind == types.KindUnknown {
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)
		if ign.Match(rel) {
			return nil
		}
		targets = append(targets, Target{Path: rel, Abs: p, Kind: kind})
		return nil
	})
	return targets, err
}
