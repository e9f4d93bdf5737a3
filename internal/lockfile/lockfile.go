// Package lockfile extracts (name, version) dependency records from npm,
// Yarn and pnpm lockfiles. Parsers are precise enough to avoid name and
// version collisions without implementing the full grammar of any format.
package lockfile

import (
	"fmt"

	"github.com/accrava/lockhound/internal/types"
)

// ParseError reports a file whose content does not have the structural
// shape expected for its detected kind. The file is skipped; the scan
// continues.
type ParseError struct {
	Path string
	Kind types.Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse dispatches data to the parser for kind. Warnings describe
// individual entries that were skipped (missing version, unparsable
// block); they never abort the file.
func Parse(kind types.Kind, path string, data []byte) (records []types.DependencyRecord, warnings []string, err error) {
	switch kind {
	case types.KindNPM:
		return ParseNPM(path, data)
	case types.KindYarn:
		return ParseYarn(path, data)
	case types.KindPNPM:
		return ParsePNPM(path, data)
	}
	return nil, nil, &ParseError{Path: path, Kind: kind, Err: fmt.Errorf("no parser for kind %q", kind)}
}
