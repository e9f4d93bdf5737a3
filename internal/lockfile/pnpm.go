package lockfile

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"

	"github.com/accrava/lockhound/internal/types"
)

// ParsePNPM scans a pnpm-lock.yaml for dependency keys of the form
// "name@version:" or "/name@version:" (quoted or not). No YAML parse:
// the keys carry both fields, and pnpm's peer-dependency suffixes like
// "name@1.0.0(peer@2.0.0):" would defeat a strict YAML load anyway.
// Lines that do not match the pattern are ignored, not errors.
func ParsePNPM(path string, data []byte) ([]types.DependencyRecord, []string, error) {
	var records []types.DependencyRecord
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasSuffix(line, ":") {
			continue
		}
		key := strings.TrimSuffix(line, ":")
		key = strings.Trim(key, `'"`)
		raw := key
		key = strings.TrimPrefix(key, "/")
		if i := strings.IndexByte(key, '('); i >= 0 {
			key = key[:i] // peer-dependency qualifier
		}
		name, version := splitNameVersion(key)
		if name == "" || version == "" {
			continue
		}
		records = append(records, types.DependencyRecord{
			PackageKey: raw,
			Name:       name,
			Version:    version,
			SourceFile: path,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, &ParseError{Path: path, Kind: types.KindPNPM, Err: err}
	}
	return records, nil, nil
}

// splitNameVersion splits "name@version", keeping a scope's internal "@"
// with the name. The version must look like one (leading digit) so plain
// YAML section keys never produce records.
func splitNameVersion(key string) (name, version string) {
	start := 0
	if strings.HasPrefix(key, "@") {
		start = 1
	}
	at := strings.Index(key[start:], "@")
	if at < 0 {
		return "", ""
	}
	name, version = key[:start+at], key[start+at+1:]
	if name == "" || version == "" {
		return "", ""
	}
	if !unicode.IsDigit(rune(version[0])) {
		return "", ""
	}
	if strings.ContainsAny(version, "/ ") {
		return "", ""
	}
	return name, version
}
