// Package audit keeps an append-only journal of scan runs so a team can
// review when a tree was last audited and what turned up.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/accrava/lockhound/internal/types"
)

// ScanRecord is one journal entry.
type ScanRecord struct {
	Timestamp    time.Time        `json:"timestamp"`
	ScanID       string           `json:"scan_id"`
	Root         string           `json:"root"`
	FilesScanned int              `json:"files_scanned"`
	FilesSkipped int              `json:"files_skipped"`
	Entries      int              `json:"entries_checked"`
	Findings     int              `json:"findings"`
	NewFindings  int              `json:"new_findings"`
	Duration     string           `json:"duration"`
	TopFindings  []FindingSummary `json:"top_findings,omitempty"`
}

type FindingSummary struct {
	File    string `json:"file"`
	Name    string `json:"package"`
	Version string `json:"version"`
	Kind    string `json:"lockfile_type"`
}

// Journal appends JSONL records next to the repository metadata when the
// root is a git checkout, otherwise to a dotfile in the root itself.
type Journal struct {
	path string
}

func NewJournal(root string) *Journal {
	path := filepath.Join(root, ".lockhound_audit.jsonl")
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "lockhound_audit.jsonl")
	}
	return &Journal{path: path}
}

// Append writes one record. Owner-only permissions: the journal names
// affected files.
func (j *Journal) Append(rec ScanRecord) error {
	if rec.ScanID == "" {
		rec.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit journal: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns past records, newest first. Corrupt lines are skipped.
func (j *Journal) History() ([]ScanRecord, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return nil, fmt.Errorf("open audit journal: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec ScanRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read audit journal: %w", err)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewRecord assembles a journal entry from a finished scan.
func NewRecord(root string, summary types.ScanSummary, newFindings []types.Finding, duration time.Duration) ScanRecord {
	top := make([]FindingSummary, 0, 10)
	for i, f := range newFindings {
		if i >= 10 {
			break
		}
		top = append(top, FindingSummary{
			File:    f.File,
			Name:    f.Name,
			Version: f.Version,
			Kind:    string(f.Kind),
		})
	}
	return ScanRecord{
		Timestamp:    time.Now(),
		Root:         root,
		FilesScanned: summary.FilesScanned,
		FilesSkipped: summary.FilesSkipped,
		Entries:      summary.EntriesTotal,
		Findings:     summary.FindingsCount,
		NewFindings:  len(newFindings),
		Duration:     duration.String(),
		TopFindings:  top,
	}
}
