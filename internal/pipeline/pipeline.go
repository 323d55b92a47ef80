package pipeline

import (
	"github.com/gashumba/momo-ledger/internal/classifier"
	"github.com/gashumba/momo-ledger/internal/domain"
	"github.com/gashumba/momo-ledger/internal/extractor"
)

// Reasons recorded on rejected messages
const (
	ReasonEmptyBody       = "Empty SMS body"
	ReasonMissingRequired = "Missing required fields (type, date, or body)"
)

// Outcome is the result of processing one raw message: exactly one log
// entry, and a record only when the message was accepted.
type Outcome struct {
	Record *domain.TransactionRecord
	Log    domain.ProcessingLogEntry
}

// Process extracts, classifies and validates one raw message. It is a pure
// function of the message body: extraction and classification run
// independently, then validation decides between skip, reject and accept.
// Required fields are category, transaction date and raw body; every other
// field may be absent on an accepted record.
func Process(msg domain.RawMessage) Outcome {
	if msg.Body == nil || *msg.Body == "" {
		reason := ReasonEmptyBody
		return Outcome{Log: domain.ProcessingLogEntry{
			Status: domain.StatusSkipped,
			Reason: &reason,
		}}
	}
	body := *msg.Body

	category := classifier.Classify(body)
	if !category.Valid() {
		category = domain.Unknown
	}

	fields := extractor.Extract(body)

	// Category always resolves (UNKNOWN is a valid terminal value) and the
	// body is non-empty here, so an unresolved date is the only rejection.
	if fields.Date == nil {
		reason := ReasonMissingRequired
		return Outcome{Log: domain.ProcessingLogEntry{
			Body:   msg.Body,
			Status: domain.StatusFailed,
			Reason: &reason,
		}}
	}

	record := &domain.TransactionRecord{
		TransactionID:   fields.TransactionID,
		Category:        category,
		Amount:          fields.Amount,
		Currency:        domain.Currency,
		SenderName:      fields.SenderName,
		ReceiverName:    fields.ReceiverName,
		PhoneNumber:     fields.PhoneNumber,
		AgentName:       fields.AgentName,
		AgentCode:       fields.AgentCode,
		TransactionDate: *fields.Date,
		Fees:            fields.Fees,
		BalanceAfter:    fields.BalanceAfter,
		RawBody:         body,
	}

	return Outcome{
		Record: record,
		Log:    domain.ProcessingLogEntry{Body: msg.Body, Status: domain.StatusSuccess},
	}
}
