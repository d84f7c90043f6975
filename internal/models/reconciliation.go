package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a row of bank_accounts.
type BankAccount struct {
	BankAccountID string `db:"bank_account_id"`
	CompanyID     string `db:"company_id"`
	Name          string `db:"name"`
	Institution   string `db:"institution"`
	LastFour      string `db:"last_four"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// BankReconciliation is a row of bank_reconciliations.
type BankReconciliation struct {
	ReconciliationID string          `db:"reconciliation_id"`
	CompanyID        string          `db:"company_id"`
	BankAccountID    string          `db:"bank_account_id"`
	PeriodStart      time.Time       `db:"period_start"`
	PeriodEnd        time.Time       `db:"period_end"`
	BeginningBalance decimal.Decimal `db:"beginning_balance"`
	EndingBalance    decimal.Decimal `db:"ending_balance"`
	Status           string          `db:"status"`
	ReconciledAt     *time.Time      `db:"reconciled_at"`
	ReconciledBy     *string         `db:"reconciled_by"`
	AuditFields
}

// BankReconciliationItem is a row of bank_reconciliation_items.
type BankReconciliationItem struct {
	ItemID           string          `db:"item_id"`
	ReconciliationID string          `db:"reconciliation_id"`
	SourceKind       string          `db:"source_kind"`
	SourceID         string          `db:"source_id"`
	Direction        string          `db:"direction"`
	Amount           decimal.Decimal `db:"amount"`
	ClearedAt        time.Time       `db:"cleared_at"`
	ClearedBy        string          `db:"cleared_by"`
}
