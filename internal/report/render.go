package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/accrava/lockhound/internal/types"
)

var (
	styleBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleKind = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type PrintOptions struct {
	NoColor  bool
	Summary  types.ScanSummary
	Duration time.Duration
}

// PrintTable writes the human-readable report. Findings are sorted by
// file then package for display only; the aggregator's order is not
// touched.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	paint := func(s lipgloss.Style, text string) string {
		if opts.NoColor {
			return text
		}
		return s.Render(text)
	}

	sorted := make([]types.Finding, len(findings))
	copy(sorted, findings)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].File == sorted[j].File {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].File < sorted[j].File
	})

	if len(sorted) == 0 {
		fmt.Fprintln(w, paint(styleOK, "No compromised releases found"))
	} else {
		fmt.Fprintln(w, paint(styleBad, fmt.Sprintf("Compromised releases: %d", len(sorted))))
		for _, f := range sorted {
			fmt.Fprintf(w, "  %s  %s  %s\n",
				paint(styleBad, f.Name+"@"+f.Version),
				paint(styleKind, string(f.Kind)),
				paint(styleDim, f.File))
		}
	}
	fmt.Fprintln(w, paint(styleDim, fmt.Sprintf(
		"%d lockfiles scanned, %d skipped, %d entries checked (%s)",
		opts.Summary.FilesScanned, opts.Summary.FilesSkipped,
		opts.Summary.EntriesTotal, opts.Duration.Round(time.Millisecond))))
}
