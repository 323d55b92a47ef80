package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gashumba/momo-ledger/internal/domain"
	"github.com/gashumba/momo-ledger/internal/logging"
	"github.com/gashumba/momo-ledger/internal/pipeline"
)

// ImportResult summarizes one import run
type ImportResult struct {
	RunID     string
	Processed int
	Imported  int
	Skipped   int
	Failed    int
	Rejected  []domain.ProcessingLogEntry
}

// ImportService orchestrates one batch import: read the export, run every
// message through the pipeline, persist accepted records and the full
// processing log.
type ImportService struct {
	messages domain.MessageRepository
	txStore  domain.TransactionStore
	logStore domain.ProcessingLogStore
	log      *logging.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	messages domain.MessageRepository,
	txStore domain.TransactionStore,
	logStore domain.ProcessingLogStore,
	log *logging.Logger,
) *ImportService {
	return &ImportService{
		messages: messages,
		txStore:  txStore,
		logStore: logStore,
		log:      log,
	}
}

// Run processes the whole export document. Individual message rejections
// never abort the batch; only a structural failure to obtain the message
// sequence, or a store failure, does. Messages are processed one at a time
// in document order so the processing log mirrors the document.
func (s *ImportService) Run() (ImportResult, error) {
	messages, err := s.messages.GetMessages()
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading sms export: %w", err)
	}

	result := ImportResult{RunID: uuid.NewString()}
	log := s.log.WithField("run_id", result.RunID)

	for _, msg := range messages {
		outcome := pipeline.Process(msg)
		result.Processed++

		switch outcome.Log.Status {
		case domain.StatusSkipped:
			result.Skipped++
			result.Rejected = append(result.Rejected, outcome.Log)
			log.Debugw("message skipped", "reason", reason(outcome.Log))
		case domain.StatusFailed:
			result.Failed++
			result.Rejected = append(result.Rejected, outcome.Log)
			log.Warnw("message rejected", "reason", reason(outcome.Log), "body", *msg.Body)
		}

		if outcome.Record != nil {
			if err := s.txStore.SaveTransaction(*outcome.Record); err != nil {
				return result, fmt.Errorf("saving transaction: %w", err)
			}
			result.Imported++
		}

		if err := s.logStore.AppendLog(result.RunID, outcome.Log); err != nil {
			return result, fmt.Errorf("appending processing log: %w", err)
		}
	}

	log.Infow("import complete",
		"processed", result.Processed,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	return result, nil
}

func reason(entry domain.ProcessingLogEntry) string {
	if entry.Reason == nil {
		return ""
	}
	return *entry.Reason
}
