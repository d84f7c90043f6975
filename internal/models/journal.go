package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
)

// JournalEntry is a row of journal_entries.
type JournalEntry struct {
	EntryID           string          `db:"entry_id"`
	CompanyID         string          `db:"company_id"`
	EntryDate         time.Time       `db:"entry_date"`
	Reference         string          `db:"reference"`
	Description       string          `db:"description"`
	Status            EntryStatus     `db:"status"`
	TotalDebit        decimal.Decimal `db:"total_debit"`
	TotalCredit       decimal.Decimal `db:"total_credit"`
	ReversedByEntryID *string         `db:"reversed_by_entry_id"` // Nullable
	ReversalDate      *time.Time      `db:"reversal_date"`        // Nullable
	ReversalOfEntryID *string         `db:"reversal_of_entry_id"` // Nullable
	AuditFields
}

// JournalEntryLine is a row of journal_entry_lines.
type JournalEntryLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	Description  string          `db:"description"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	LineOrder    int             `db:"line_order"`
	IsReconciled bool            `db:"is_reconciled"`
	ReconciledAt *time.Time      `db:"reconciled_at"`
	ReconciledBy *string         `db:"reconciled_by"`
}
