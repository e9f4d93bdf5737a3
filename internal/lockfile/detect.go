package lockfile

import (
	"path/filepath"

	"github.com/accrava/lockhound/internal/types"
)

var kindByName = map[string]types.Kind{
	"package-lock.json": types.KindNPM,
	"yarn.lock":         types.KindYarn,
	"pnpm-lock.yaml":    types.KindPNPM,
}

// Detect classifies a path by its final segment. Anything that is not one
// of the three recognized lockfile names is KindUnknown and gets skipped
// by callers without an error.
func Detect(path string) types.Kind {
	if k, ok := kindByName[filepath.Base(path)]; ok {
		return k
	}
	return types.KindUnknown
}

// Filenames returns the recognized lockfile basenames.
func Filenames() []string {
	return []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml"}
}
