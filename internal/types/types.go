package types

import "time"

// Kind identifies which package-manager ecosystem produced a lockfile.
type Kind string

const (
	KindNPM     Kind = "npm"
	KindYarn    Kind = "yarn"
	KindPNPM    Kind = "pnpm"
	KindUnknown Kind = "unknown"
)

// MatchSpec is one package release considered compromised. Matching is
// exact string equality on both fields; no semver ranges.
type MatchSpec struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DependencyRecord is one dependency entry extracted from a lockfile.
// PackageKey is the raw identifier as written in the file (it may embed a
// node_modules path or a version range); Name and Version are the
// normalized fields used for matching.
type DependencyRecord struct {
	PackageKey string
	Name       string
	Version    string
	SourceFile string
}

// Finding is a confirmed occurrence of a MatchSpec inside a scanned file.
// Immutable after creation.
type Finding struct {
	Timestamp time.Time `json:"timestamp"`
	File      string    `json:"file"`
	Name      string    `json:"package"`
	Version   string    `json:"version"`
	Kind      Kind      `json:"lockfile_type"`
}

// ScanSummary accumulates per-scan counters. It lives for exactly one scan
// invocation and is read once at the end to pick the exit code.
type ScanSummary struct {
	FilesScanned  int `json:"files_scanned"`
	FilesSkipped  int `json:"files_skipped"`
	EntriesTotal  int `json:"entries_total"`
	FindingsCount int `json:"findings_count"`
}
