package report_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gashumba/momo-ledger/internal/domain"
	"github.com/gashumba/momo-ledger/internal/report"
	"github.com/gashumba/momo-ledger/internal/service"
)

func TestJSONFormatter(t *testing.T) {
	formatter := report.NewJSONFormatter(false)

	result := service.ImportResult{
		RunID:     "run-1",
		Processed: 10,
		Imported:  7,
		Skipped:   1,
		Failed:    2,
	}

	output, err := formatter.Format(result)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var summary map[string]interface{}
	if err := json.Unmarshal(output, &summary); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if summary["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", summary["run_id"])
	}
	if summary["processed"] != float64(10) {
		t.Errorf("processed = %v, want 10", summary["processed"])
	}
	if summary["imported"] != float64(7) {
		t.Errorf("imported = %v, want 7", summary["imported"])
	}

	if formatter.FileExtension() != "json" {
		t.Errorf("FileExtension() = %s, want json", formatter.FileExtension())
	}
}

func TestWriteRejectsCSV(t *testing.T) {
	body := "unparseable message"
	reason := "Missing required fields (type, date, or body)"
	emptyReason := "Empty SMS body"

	entries := []domain.ProcessingLogEntry{
		{Status: domain.StatusSkipped, Reason: &emptyReason},
		{Body: &body, Status: domain.StatusFailed, Reason: &reason},
	}

	path := filepath.Join(t.TempDir(), "rejects.csv")
	if err := report.WriteRejectsCSV(path, entries); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening rejects file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Reading rejects file: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "status" || rows[0][1] != "reason" || rows[0][2] != "sms_body" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][0] != "SKIPPED" || rows[1][1] != emptyReason || rows[1][2] != "" {
		t.Errorf("Unexpected skipped row: %v", rows[1])
	}
	if rows[2][0] != "FAILED" || rows[2][1] != reason || rows[2][2] != body {
		t.Errorf("Unexpected failed row: %v", rows[2])
	}
}

func TestWriteRejectsCSVNoEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rejects.csv")
	if err := report.WriteRejectsCSV(path, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading rejects file: %v", err)
	}
	if len(content) == 0 {
		t.Error("Expected at least a header row")
	}
}
