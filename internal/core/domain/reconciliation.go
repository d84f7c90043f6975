package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a company bank account that payments are drawn on.
type BankAccount struct {
	BankAccountID string `json:"bankAccountID"`
	CompanyID     string `json:"companyID"`
	Name          string `json:"name"`
	Institution   string `json:"institution"`
	LastFour      string `json:"lastFour"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// ReconciliationStatus is the state of a reconciliation session.
type ReconciliationStatus string

const (
	ReconciliationOpen       ReconciliationStatus = "OPEN"
	ReconciliationReconciled ReconciliationStatus = "RECONCILED"
)

// BankReconciliation is one statement-period session for a bank account.
type BankReconciliation struct {
	ReconciliationID string               `json:"reconciliationID"`
	CompanyID        string               `json:"companyID"`
	BankAccountID    string               `json:"bankAccountID"`
	PeriodStart      time.Time            `json:"periodStart"`
	PeriodEnd        time.Time            `json:"periodEnd"`
	BeginningBalance decimal.Decimal      `json:"beginningBalance"`
	EndingBalance    decimal.Decimal      `json:"endingBalance"`
	Status           ReconciliationStatus `json:"status"`
	ReconciledAt     *time.Time           `json:"reconciledAt,omitempty"`
	ReconciledBy     *string              `json:"reconciledBy,omitempty"`
	AuditFields
}

// SourceKind is what a reconciliation item clears.
type SourceKind string

const (
	SourcePayment     SourceKind = "PAYMENT"
	SourceJournalLine SourceKind = "JOURNAL_LINE"
)

// Direction is the effect of a candidate on the bank balance.
type Direction string

const (
	Deposit    Direction = "DEPOSIT"
	Withdrawal Direction = "WITHDRAWAL"
)

// CandidateRef identifies a clearable source.
type CandidateRef struct {
	SourceKind SourceKind `json:"sourceKind"`
	SourceID   string     `json:"sourceID"`
}

// Key is a stable string form of the reference.
func (r CandidateRef) Key() string {
	return string(r.SourceKind) + ":" + r.SourceID
}

// ReconciliationCandidate is a payment or cash journal line that may appear on the statement.
type ReconciliationCandidate struct {
	CandidateRef
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Direction   Direction       `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
}

// BankReconciliationItem records one source cleared by a closed session.
type BankReconciliationItem struct {
	ItemID           string          `json:"itemID"`
	ReconciliationID string          `json:"reconciliationID"`
	SourceKind       SourceKind      `json:"sourceKind"`
	SourceID         string          `json:"sourceID"`
	Direction        Direction       `json:"direction"`
	Amount           decimal.Decimal `json:"amount"`
	ClearedAt        time.Time       `json:"clearedAt"`
	ClearedBy        string          `json:"clearedBy"`
}

// Ref returns the source reference of the item.
func (i BankReconciliationItem) Ref() CandidateRef {
	return CandidateRef{SourceKind: i.SourceKind, SourceID: i.SourceID}
}

// ReconciliationReport partitions candidates and carries the cleared balance.
type ReconciliationReport struct {
	Reconciliation     BankReconciliation        `json:"reconciliation"`
	Cleared            []ReconciliationCandidate `json:"cleared"`
	Uncleared          []ReconciliationCandidate `json:"uncleared"`
	ClearedDeposits    decimal.Decimal           `json:"clearedDeposits"`
	ClearedWithdrawals decimal.Decimal           `json:"clearedWithdrawals"`
	ClearedBalance     decimal.Decimal           `json:"clearedBalance"`
	Difference         decimal.Decimal           `json:"difference"`
}

// IsBalanced reports whether the cleared balance matches the statement.
func (r ReconciliationReport) IsBalanced() bool {
	return r.Difference.IsZero()
}
