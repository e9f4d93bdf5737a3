package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/accrava/lockhound/internal/types"
)

func TestJournal_AppendAndHistory(t *testing.T) {
	dir := t.TempDir()
	j := NewJournal(dir)

	for i, id := range []string{"first", "second"} {
		rec := NewRecord(dir, types.ScanSummary{FilesScanned: i + 1}, nil, time.Second)
		rec.ScanID = id
		if err := j.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := j.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// newest first
	if records[0].ScanID != "second" || records[1].ScanID != "first" {
		t.Fatalf("unexpected order: %s, %s", records[0].ScanID, records[1].ScanID)
	}
}

func TestJournal_PrefersGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	j := NewJournal(dir)
	if err := j.Append(ScanRecord{ScanID: "x"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "lockhound_audit.jsonl")); err != nil {
		t.Fatalf("journal not placed under .git: %v", err)
	}
}

func TestJournal_SkipsCorruptLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".lockhound_audit.jsonl")
	body := `{"scan_id":"good"}` + "\nnot json\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	j := NewJournal(dir)
	records, err := j.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 1 || records[0].ScanID != "good" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestNewRecord_TruncatesTopFindings(t *testing.T) {
	findings := make([]types.Finding, 15)
	for i := range findings {
		findings[i] = types.Finding{Name: "debug", Version: "4.4.2", Kind: types.KindNPM}
	}
	rec := NewRecord("/tmp/x", types.ScanSummary{FindingsCount: 15}, findings, time.Second)
	if len(rec.TopFindings) != 10 {
		t.Fatalf("expected 10 top findings, got %d", len(rec.TopFindings))
	}
	if rec.NewFindings != 15 {
		t.Fatalf("expected 15 new findings, got %d", rec.NewFindings)
	}
}
