package storage

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/gashumba/momo-ledger/internal/domain"
)

const dateLayout = "2006-01-02 15:04:05"

// Store persists transaction records and the processing log in SQLite
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at dbPath, creating it and applying the
// schema when needed.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTransaction inserts an accepted record. Duplicates on transaction_id
// are ignored, so re-importing the same export never creates duplicate rows.
// Records without a transaction id are exempt from the uniqueness key: SQLite
// treats NULLs in a unique column as distinct.
func (s *Store) SaveTransaction(rec domain.TransactionRecord) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO transactions (
			transaction_id, transaction_type, amount, currency,
			sender_name, receiver_name, phone_number,
			agent_name, agent_code, transaction_date,
			fees, balance_after, raw_sms_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullString(rec.TransactionID),
		string(rec.Category),
		nullAmount(rec.Amount),
		rec.Currency,
		nullString(rec.SenderName),
		nullString(rec.ReceiverName),
		nullString(rec.PhoneNumber),
		nullString(rec.AgentName),
		nullString(rec.AgentCode),
		rec.TransactionDate.Format(dateLayout),
		rec.Fees.InexactFloat64(),
		nullAmount(rec.BalanceAfter),
		rec.RawBody,
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	return nil
}

// AppendLog appends one per-message processing outcome row
func (s *Store) AppendLog(runID string, entry domain.ProcessingLogEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO processing_log (run_id, sms_body, status, error_message)
		VALUES (?, ?, ?, ?)`,
		runID,
		nullString(entry.Body),
		string(entry.Status),
		nullString(entry.Reason),
	)
	if err != nil {
		return fmt.Errorf("inserting processing log: %w", err)
	}
	return nil
}

// TransactionCount returns the number of stored transaction rows
func (s *Store) TransactionCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}
	return count, nil
}

// LogCount returns the number of processing log rows written by a run
func (s *Store) LogCount(runID string) (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM processing_log WHERE run_id = ?", runID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting processing log: %w", err)
	}
	return count, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullAmount(d *decimal.Decimal) sql.NullFloat64 {
	if d == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: d.InexactFloat64(), Valid: true}
}

const schemaSQL = `
-- transactions: accepted mobile-money transaction records
CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    transaction_id TEXT UNIQUE,
    transaction_type TEXT NOT NULL,
    amount REAL,
    currency TEXT NOT NULL DEFAULT 'RWF',
    sender_name TEXT,
    receiver_name TEXT,
    phone_number TEXT,
    agent_name TEXT,
    agent_code TEXT,
    transaction_date DATETIME NOT NULL,
    fees REAL NOT NULL DEFAULT 0,
    balance_after REAL,
    raw_sms_body TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(transaction_type);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(transaction_date);

-- processing_log: one audit row per raw message, successes included
CREATE TABLE IF NOT EXISTS processing_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    sms_body TEXT,
    status TEXT NOT NULL CHECK (status IN ('SUCCESS', 'SKIPPED', 'FAILED')),
    error_message TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_processing_log_run ON processing_log(run_id);
`
