package engine

import (
	"sync"

	"github.com/accrava/lockhound/internal/types"
)

// Aggregator owns the growing finding sequence and the running summary
// for one scan invocation. Findings are appended in the order given and
// never reordered or deduplicated; appends are serialized so concurrent
// producers stay safe.
type Aggregator struct {
	mu       sync.Mutex
	findings []types.Finding
	summary  types.ScanSummary
}

// AddFile records the outcome of one processed file.
func (a *Aggregator) AddFile(findings []types.Finding, entries int, skipped bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if skipped {
		a.summary.FilesSkipped++
		return
	}
	a.summary.FilesScanned++
	a.summary.EntriesTotal += entries
	a.summary.FindingsCount += len(findings)
	a.findings = append(a.findings, findings...)
}

// Findings returns the ordered sequence accumulated so far.
func (a *Aggregator) Findings() []types.Finding {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.findings
}

// Summary returns the current counters.
func (a *Aggregator) Summary() types.ScanSummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.summary
}
