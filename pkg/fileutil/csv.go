package fileutil

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter provides a helper/utility to write CSV file(s)
type CSVWriter struct {
	FilePath string
}

// NewCSVWriter returns a CSVWriter instance for a specified CSV file
func NewCSVWriter(fp string) *CSVWriter {
	return &CSVWriter{
		FilePath: fp,
	}
}

// WriteAll writes a header and all rows to the CSV file, creating or
// truncating it
func (w *CSVWriter) WriteAll(header []string, rows [][]string) error {
	f, err := os.Create(w.FilePath)
	if err != nil {
		return fmt.Errorf("creating a csv file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV writer: %w", err)
	}

	return nil
}
