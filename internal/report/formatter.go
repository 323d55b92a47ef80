package report

import (
	"encoding/json"

	"github.com/gashumba/momo-ledger/internal/domain"
	"github.com/gashumba/momo-ledger/internal/service"
	"github.com/gashumba/momo-ledger/pkg/fileutil"
)

// OutputFormatter defines the interface for formatting import results
type OutputFormatter interface {
	Format(result service.ImportResult) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats import results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result service.ImportResult) ([]byte, error) {
	summary := struct {
		RunID     string `json:"run_id"`
		Processed int    `json:"processed"`
		Imported  int    `json:"imported"`
		Skipped   int    `json:"skipped"`
		Failed    int    `json:"failed"`
	}{
		RunID:     result.RunID,
		Processed: result.Processed,
		Imported:  result.Imported,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
	}

	if f.PrettyPrint {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

var rejectsHeader = []string{"status", "reason", "sms_body"}

// WriteRejectsCSV writes every skipped/failed log entry of a run to a CSV
// file, one row per message, for operators reviewing unparsed input.
func WriteRejectsCSV(path string, entries []domain.ProcessingLogEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			string(entry.Status),
			orEmpty(entry.Reason),
			orEmpty(entry.Body),
		})
	}

	writer := fileutil.NewCSVWriter(path)
	return writer.WriteAll(rejectsHeader, rows)
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
