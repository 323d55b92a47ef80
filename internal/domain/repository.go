package domain

// MessageRepository supplies the raw SMS bodies of one export document.
// A document that cannot be read or parsed is a single structural failure;
// no per-message results are produced from it.
type MessageRepository interface {
	GetMessages() ([]RawMessage, error)
}

// TransactionStore persists accepted transaction records. Saving must be
// idempotent on TransactionID: re-importing the same export must not create
// duplicate rows.
type TransactionStore interface {
	SaveTransaction(rec TransactionRecord) error
}

// ProcessingLogStore appends per-message processing outcomes, one row per
// raw message, tagged with the import run that produced them.
type ProcessingLogStore interface {
	AppendLog(runID string, entry ProcessingLogEntry) error
}
