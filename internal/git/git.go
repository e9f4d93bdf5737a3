// Package git fetches lockfile blobs from a repository's index and
// history by shelling out to the git binary, so scans can cover staged
// changes and recent commits in addition to the working tree.
package git

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/accrava/lockhound/internal/lockfile"
	"github.com/accrava/lockhound/internal/types"
)

// Blob is a lockfile fetched from git rather than the filesystem. Label
// carries the source ("staged:path" or "<short-hash>:path") and is what
// reports show as the file.
type Blob struct {
	Path  string
	Label string
	Data  []byte
}

// StagedLockfiles returns the recognized lockfiles currently staged in
// the repository at root.
func StagedLockfiles(root string) ([]Blob, error) {
	out, err := exec.Command("git", "-C", root, "diff", "--name-only", "--cached").Output()
	if err != nil {
		return nil, fmt.Errorf("git diff --cached: %w", err)
	}
	var blobs []Blob
	for _, p := range strings.Fields(string(out)) {
		if lockfile.Detect(p) == types.KindUnknown {
			continue
		}
		b, err := exec.Command("git", "-C", root, "show", ":"+p).Output()
		if err != nil {
			continue // deleted in index
		}
		blobs = append(blobs, Blob{Path: p, Label: "staged:" + p, Data: b})
	}
	return blobs, nil
}

// HistoryLockfiles returns recognized lockfiles touched in the last n
// commits of the repository at root, newest first. Within one commit the
// files are sorted for deterministic output.
func HistoryLockfiles(root string, n int) ([]Blob, error) {
	if n <= 0 {
		return nil, nil
	}
	out, err := exec.Command("git", "-C", root, "rev-list", "--max-count", fmt.Sprintf("%d", n), "HEAD").Output()
	if err != nil {
		return nil, fmt.Errorf("git rev-list: %w", err)
	}
	var blobs []Blob
	for _, h := range strings.Fields(string(out)) {
		filesOut, err := exec.Command("git", "-C", root, "show", h, "--name-only", "--pretty=").Output()
		if err != nil {
			continue
		}
		files := strings.Fields(string(filesOut))
		sort.Strings(files)
		for _, p := range files {
			if lockfile.Detect(p) == types.KindUnknown {
				continue
			}
			b, err := exec.Command("git", "-C", root, "show", h+":"+p).Output()
			if err != nil {
				continue
			}
			blobs = append(blobs, Blob{Path: p, Label: shortHash(h) + ":" + p, Data: b})
		}
	}
	return blobs, nil
}

func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
