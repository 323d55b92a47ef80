package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gashumba/momo-ledger/internal/repository"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sms_export.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test export: %v", err)
	}
	return path
}

func TestXMLSMSRepository_GetMessages(t *testing.T) {
	export := `<smses>
  <sms><body>You have received 5000 RWF from John Doe. Date: 2024-01-15 10:30:00.</body></sms>
  <sms><body></body></sms>
  <sms></sms>
</smses>`

	repo := repository.NewXMLSMSRepository(writeExport(t, export))

	messages, err := repo.GetMessages()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}

	if messages[0].Body == nil {
		t.Fatal("Expected first message to carry a body")
	}
	want := "You have received 5000 RWF from John Doe. Date: 2024-01-15 10:30:00."
	if *messages[0].Body != want {
		t.Errorf("First body = %q, want %q", *messages[0].Body, want)
	}

	// An empty <body> element decodes to an empty string; the pipeline
	// treats both that and a missing element as an absent body.
	if messages[1].Body == nil || *messages[1].Body != "" {
		t.Errorf("Second body = %v, want empty string", messages[1].Body)
	}
	if messages[2].Body != nil {
		t.Errorf("Third body = %q, want nil", *messages[2].Body)
	}
}

func TestXMLSMSRepository_EmptyDocument(t *testing.T) {
	repo := repository.NewXMLSMSRepository(writeExport(t, `<smses></smses>`))

	messages, err := repo.GetMessages()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("Expected no messages, got %d", len(messages))
	}
}

func TestXMLSMSRepository_MalformedDocumentIsStructuralFailure(t *testing.T) {
	repo := repository.NewXMLSMSRepository(writeExport(t, `<smses><sms><body>truncated`))

	if _, err := repo.GetMessages(); err == nil {
		t.Fatal("Expected an error for a malformed document")
	}
}

func TestXMLSMSRepository_MissingFile(t *testing.T) {
	repo := repository.NewXMLSMSRepository(filepath.Join(t.TempDir(), "nope.xml"))

	if _, err := repo.GetMessages(); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
