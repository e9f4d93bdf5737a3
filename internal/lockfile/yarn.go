package lockfile

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/accrava/lockhound/internal/types"
)

// Matches "version "5.6.1"" (classic) and "version: 5.6.1" (berry).
var yarnVersionRe = regexp.MustCompile(`^\s+version:?\s+"?([^"\s]+)"?\s*$`)

// ParseYarn parses a yarn.lock. The file is a sequence of blocks: a
// non-indented header of comma-separated descriptors ending in ":",
// followed by indented fields, one of which is the resolved version. One
// record is emitted per descriptor, all sharing the block's version. A
// block whose version never appears is skipped with a warning.
func ParseYarn(path string, data []byte) ([]types.DependencyRecord, []string, error) {
	var records []types.DependencyRecord
	var warnings []string

	var descriptors []string // descriptors of the open block
	var headerLine int
	version := ""

	flush := func() {
		if len(descriptors) == 0 {
			return
		}
		if version == "" {
			warnings = append(warnings, fmt.Sprintf("block at line %d has no version", headerLine))
		} else {
			for _, d := range descriptors {
				name := descriptorName(d)
				if name == "" {
					warnings = append(warnings, fmt.Sprintf("unparsable descriptor %q at line %d", d, headerLine))
					continue
				}
				records = append(records, types.DependencyRecord{
					PackageKey: d,
					Name:       name,
					Version:    version,
					SourceFile: path,
				})
			}
		}
		descriptors, version = nil, ""
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			continue
		case !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t"):
			// new block header
			flush()
			if !strings.HasSuffix(trimmed, ":") {
				continue // metadata such as __metadata or stray lines
			}
			header := strings.TrimSuffix(trimmed, ":")
			if header == "__metadata" { // berry bookkeeping block
				continue
			}
			for _, d := range strings.Split(header, ",") {
				d = strings.Trim(strings.TrimSpace(d), `"`)
				if d != "" {
					descriptors = append(descriptors, d)
				}
			}
			headerLine = lineNo
		case version == "":
			if m := yarnVersionRe.FindStringSubmatch(line); m != nil {
				version = m[1]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, &ParseError{Path: path, Kind: types.KindYarn, Err: err}
	}
	flush()
	return records, warnings, nil
}

// descriptorName returns the package name of a descriptor like
// "chalk@^5.6.1" or "@scope/name@npm:1.x". The separator is the first "@"
// past a leading scope sigil; anything after it (including protocol
// prefixes and further "@"s) belongs to the range.
func descriptorName(d string) string {
	if d == "__metadata" {
		return ""
	}
	start := 0
	if strings.HasPrefix(d, "@") {
		start = 1
	}
	at := strings.Index(d[start:], "@")
	if at < 0 {
		return ""
	}
	name := d[:start+at]
	if name == "" || name == "@" {
		return ""
	}
	return name
}
