package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/accrava/lockhound/internal/types"
)

var csvHeader = []string{"timestamp", "file", "package", "version", "lockfile_type"}

// WriteCSV emits one row per finding, in aggregator order, preceded by
// the header.
func WriteCSV(w io.Writer, findings []types.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range findings {
		row := []string{
			f.Timestamp.Format("2006-01-02 15:04:05"),
			f.File,
			f.Name,
			f.Version,
			string(f.Kind),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the report to path, truncating any previous run.
func SaveCSV(path string, findings []types.Finding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if err := WriteCSV(f, findings); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
