package domain

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

// JournalEntry is a balanced set of postings representing one business event.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	CompanyID   string          `json:"companyID"`
	EntryDate   time.Time       `json:"entryDate"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Status      EntryStatus     `json:"status"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	// ReversedByEntryID points at the single reversal of this entry, if any.
	ReversedByEntryID *string    `json:"reversedByEntryID,omitempty"`
	ReversalDate      *time.Time `json:"reversalDate,omitempty"`
	// ReversalOfEntryID is set on a reversal and points back at the entry it offsets.
	ReversalOfEntryID *string `json:"reversalOfEntryID,omitempty"`
	AuditFields
}

// IsReversed reports whether the entry already has a reversal.
func (e JournalEntry) IsReversed() bool {
	return e.ReversedByEntryID != nil
}

// JournalEntryLine is one account-scoped debit or credit within an entry.
// At most one of DebitAmount and CreditAmount is non-zero.
type JournalEntryLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	LineOrder    int             `json:"lineOrder"`
	IsReconciled bool            `json:"isReconciled"`
	ReconciledAt *time.Time      `json:"reconciledAt,omitempty"`
	ReconciledBy *string         `json:"reconciledBy,omitempty"`
}

// IsDebit reports whether the line posts to the debit side.
func (l JournalEntryLine) IsDebit() bool {
	return l.DebitAmount.IsPositive()
}

// Amount returns the non-zero side of the line.
func (l JournalEntryLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.DebitAmount
	}
	return l.CreditAmount
}

// DeletionState is everything the deletion policy needs to know about an entry,
// read under lock.
type DeletionState struct {
	Entry               JournalEntry
	LineCount           int
	ReconciledLineCount int
	LinkedPaymentID     *string
}
