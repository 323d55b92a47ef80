package repository

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/gashumba/momo-ledger/internal/domain"
)

// smsDocument mirrors the shape of an SMS backup export: a root element
// wrapping <sms> entries, each carrying its text in a <body> child.
type smsDocument struct {
	Messages []smsElement `xml:"sms"`
}

type smsElement struct {
	Body *string `xml:"body"`
}

// XMLSMSRepository implements the MessageRepository interface for SMS backup
// XML files
type XMLSMSRepository struct {
	FilePath string
}

// NewXMLSMSRepository creates a new XMLSMSRepository for the given export file
func NewXMLSMSRepository(fp string) *XMLSMSRepository {
	return &XMLSMSRepository{FilePath: fp}
}

// GetMessages reads the whole export and returns one RawMessage per <sms>
// element, in document order. An entry without a <body> child yields an
// absent body. A document that cannot be opened or parsed is a structural
// failure for the whole batch.
func (r *XMLSMSRepository) GetMessages() ([]domain.RawMessage, error) {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening sms export: %w", err)
	}
	defer f.Close()

	var doc smsDocument
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing sms export: %w", err)
	}

	messages := make([]domain.RawMessage, 0, len(doc.Messages))
	for _, sms := range doc.Messages {
		messages = append(messages, domain.RawMessage{Body: sms.Body})
	}

	return messages, nil
}
