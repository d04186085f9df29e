// Package export writes the currently rendered tool list to CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/osint-atlas/atlas/internal/model"
)

var header = []string{"Name", "Category", "URL", "Pricing", "Registration Required"}

// CSV renders one row per tool in the given (already filtered and sorted)
// order, preceded by the header row. Fields are quoted per RFC 4180.
func CSV(tools []model.Tool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, t := range tools {
		registration := "No"
		if t.Registration {
			registration = "Yes"
		}
		row := []string{t.Name, t.Category, t.URL, string(t.Pricing), registration}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the export filename for the given day:
// osint-tools-YYYY-MM-DD.csv
func Filename(now time.Time) string {
	return fmt.Sprintf("osint-tools-%s.csv", now.Format("2006-01-02"))
}

// DefaultPath returns the default export file path under ~/Downloads.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Downloads", Filename(time.Now())), nil
}

// WriteFile renders the tools to CSV and writes them to path.
func WriteFile(path string, tools []model.Tool) error {
	data, err := CSV(tools)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
