package domain

// Status represents the outcome of processing one raw message
type Status string

// Processing statuses
const (
	StatusSuccess Status = "SUCCESS"
	StatusSkipped Status = "SKIPPED"
	StatusFailed  Status = "FAILED"
)

// RawMessage is one SMS entry from the export document. Body is nil when the
// entry carried no text at all.
type RawMessage struct {
	Body *string
}

// ProcessingLogEntry is the per-message audit record. Every raw message
// produces exactly one entry, successes included; Reason is set only on
// skipped and failed entries.
type ProcessingLogEntry struct {
	Body   *string
	Status Status
	Reason *string
}
