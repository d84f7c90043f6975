package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard is a row of credit_cards.
type CreditCard struct {
	CardID                   string     `db:"card_id"`
	CompanyID                string     `db:"company_id"`
	Name                     string     `db:"name"`
	LastFour                 string     `db:"last_four"`
	ImportCount              int        `db:"import_count"`
	ImportedTransactionCount int        `db:"imported_transaction_count"`
	LastImportAt             *time.Time `db:"last_import_at"`
	LastImportBy             *string    `db:"last_import_by"`
	AuditFields
}

// CreditCardTransaction is a row of credit_card_transactions.
type CreditCardTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	CardID          string          `db:"card_id"`
	CompanyID       string          `db:"company_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	PostDate        *time.Time      `db:"post_date"`
	Description     string          `db:"description"`
	Merchant        string          `db:"merchant"`
	Category        string          `db:"category"`
	Reference       string          `db:"reference"`
	Memo            string          `db:"memo"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	CodingStatus    string          `db:"coding_status"`
	ImportedFromCSV bool            `db:"imported_from_csv"`
	DedupKey        string          `db:"dedup_key"`
	ImportBatchID   *string         `db:"import_batch_id"`
	AuditFields
}

// ImportBatch is a row of import_batches.
type ImportBatch struct {
	BatchID        string    `db:"batch_id"`
	CardID         string    `db:"card_id"`
	CompanyID      string    `db:"company_id"`
	FileName       string    `db:"file_name"`
	FileDigest     string    `db:"file_digest"`
	Format         string    `db:"format"`
	TotalRows      int       `db:"total_rows"`
	ImportedCount  int       `db:"imported_count"`
	DuplicateCount int       `db:"duplicate_count"`
	SkippedCount   int       `db:"skipped_count"`
	ExcludedCount  int       `db:"excluded_count"`
	ImportedAt     time.Time `db:"imported_at"`
	ImportedBy     string    `db:"imported_by"`
}
