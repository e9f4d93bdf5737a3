package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/accrava/lockhound/internal/types"
)

// DefaultBaselineFile is looked up relative to the working directory.
const DefaultBaselineFile = "lockhound.baseline.json"

// Baseline holds fingerprints of findings a team has already triaged.
// Scans still report them but only new findings fail the run.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return b, err
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[FindingKey(f)] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// FindingKey is the stable fingerprint of a finding. Timestamps are
// excluded so re-scans of an unchanged tree fingerprint identically.
func FindingKey(f types.Finding) string {
	return fmt.Sprintf("%s|%s|%s", f.File, f.Name, f.Version)
}

// FilterNew returns the findings not present in the baseline, keeping
// their order.
func FilterNew(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[FindingKey(f)] {
			out = append(out, f)
		}
	}
	return out
}

// ShouldFail reports whether the run should exit non-zero: any finding
// outside the baseline fails the scan.
func ShouldFail(newFindings []types.Finding) bool {
	return len(newFindings) > 0
}
