package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsEmptyMatcher(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Match("anything/yarn.lock") {
		t.Fatal("empty matcher must match nothing")
	}
}

func TestMatch_Patterns(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, DefaultFile)
	body := "# fixtures are expected to contain flagged versions\ntestdata/**\nvendor/yarn.lock\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !m.Match("testdata/sub/package-lock.json") {
		t.Fatal("glob pattern did not match")
	}
	if !m.Match("vendor/yarn.lock") {
		t.Fatal("literal pattern did not match")
	}
	if m.Match("src/yarn.lock") {
		t.Fatal("unrelated path matched")
	}
}
