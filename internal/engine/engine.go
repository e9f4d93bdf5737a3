// Package engine drives a scan: discover lockfiles under a root, parse
// each into dependency records, match the records against the registry
// and aggregate findings deterministically.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/accrava/lockhound/internal/git"
	"github.com/accrava/lockhound/internal/ignore"
	"github.com/accrava/lockhound/internal/lockfile"
	"github.com/accrava/lockhound/internal/registry"
	"github.com/accrava/lockhound/internal/types"
)

type Config struct {
	Root           string
	Threads        int   // <=1 scans sequentially
	MaxBytes       int64 // skip files larger than this; 0 = no limit
	ExcludeFile    string
	Staged         bool // also scan staged lockfile blobs
	HistoryCommits int  // also scan lockfiles in the last N commits
	Logger         *log.Logger
}

type Result struct {
	Findings []types.Finding
	Summary  types.ScanSummary
	Duration time.Duration
}

// InvalidRootError is the only fatal scan error: the supplied root does
// not exist or is not a directory. Nothing is scanned.
type InvalidRootError struct {
	Path string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid scan root: %s", e.Path)
}

// Scan runs one full scan. Per-file and per-entry problems are logged and
// skipped; findings accumulated from other files are never lost.
func Scan(cfg Config, reg *registry.Registry) (*Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	start := time.Now()

	st, err := os.Stat(cfg.Root)
	if err != nil || !st.IsDir() {
		return nil, &InvalidRootError{Path: cfg.Root}
	}

	exclFile := cfg.ExcludeFile
	if exclFile == "" {
		exclFile = filepath.Join(cfg.Root, ignore.DefaultFile)
	}
	ign, _ := ignore.Load(exclFile)

	targets, err := Discover(cfg.Root, ign)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", cfg.Root, err)
	}
	logger.Debug("discovered lockfiles", "count", len(targets))

	type fileResult struct {
		findings []types.Finding
		entries  int
		skipped  bool
	}
	results := make([]fileResult, len(targets))

	scanOne := func(i int) {
		t := targets[i]
		logger.Debug("scanning", "file", t.Path, "kind", t.Kind)
		data, err := os.ReadFile(t.Abs)
		if err != nil {
			logger.Warn("unreadable file skipped", "file", t.Path, "err", err)
			results[i].skipped = true
			return
		}
		if cfg.MaxBytes > 0 && int64(len(data)) > cfg.MaxBytes {
			logger.Warn("oversized file skipped", "file", t.Path, "bytes", len(data))
			results[i].skipped = true
			return
		}
		recs, warns, err := lockfile.Parse(t.Kind, t.Path, data)
		if err != nil {
			logger.Warn("unparsable file skipped", "file", t.Path, "err", err)
			results[i].skipped = true
			return
		}
		for _, w := range warns {
			logger.Warn("malformed entry skipped", "file", t.Path, "detail", w)
		}
		results[i].entries = len(recs)
		results[i].findings = matchRecords(reg, recs, t.Kind, logger)
	}

	threads := cfg.Threads
	if threads > len(targets) {
		threads = len(targets)
	}
	if threads <= 1 {
		for i := range targets {
			scanOne(i)
		}
	} else {
		// Files are independent; workers write to disjoint slots and the
		// slots are flattened in traversal order below, so concurrent and
		// sequential runs produce identical output.
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < threads; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					scanOne(i)
				}
			}()
		}
		for i := range targets {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	var agg Aggregator
	for i := range results {
		agg.AddFile(results[i].findings, results[i].entries, results[i].skipped)
	}

	if cfg.Staged {
		scanBlobs(&agg, reg, logger, func() ([]git.Blob, error) { return git.StagedLockfiles(cfg.Root) })
	}
	if cfg.HistoryCommits > 0 {
		scanBlobs(&agg, reg, logger, func() ([]git.Blob, error) {
			return git.HistoryLockfiles(cfg.Root, cfg.HistoryCommits)
		})
	}

	return &Result{
		Findings: agg.Findings(),
		Summary:  agg.Summary(),
		Duration: time.Since(start),
	}, nil
}

// scanBlobs runs the parse/match pipeline over lockfile blobs fetched
// from git instead of the working tree. Git being unavailable is not an
// error for the scan as a whole.
func scanBlobs(agg *Aggregator, reg *registry.Registry, logger *log.Logger, fetch func() ([]git.Blob, error)) {
	blobs, err := fetch()
	if err != nil {
		logger.Warn("git source unavailable", "err", err)
		return
	}
	for _, b := range blobs {
		kind := lockfile.Detect(b.Path)
		if kind == types.KindUnknown {
			continue
		}
		recs, warns, err := lockfile.Parse(kind, b.Label, b.Data)
		if err != nil {
			logger.Warn("unparsable blob skipped", "file", b.Label, "err", err)
			agg.AddFile(nil, 0, true)
			continue
		}
		for _, w := range warns {
			logger.Warn("malformed entry skipped", "file", b.Label, "detail", w)
		}
		agg.AddFile(matchRecords(reg, recs, kind, logger), len(recs), false)
	}
}

// matchRecords is the matcher: exact (name, version) equality against the
// registry, one finding per matching record, in emission order.
func matchRecords(reg *registry.Registry, recs []types.DependencyRecord, kind types.Kind, logger *log.Logger) []types.Finding {
	var out []types.Finding
	for _, r := range recs {
		if !reg.Match(r.Name, r.Version) {
			continue
		}
		logger.Warn("compromised release found", "file", r.SourceFile, "package", r.Name, "version", r.Version)
		out = append(out, types.Finding{
			Timestamp: time.Now(),
			File:      r.SourceFile,
			Name:      r.Name,
			Version:   r.Version,
			Kind:      kind,
		})
	}
	return out
}
