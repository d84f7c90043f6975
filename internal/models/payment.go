package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of payments.
type Payment struct {
	PaymentID      string          `db:"payment_id"`
	CompanyID      string          `db:"company_id"`
	PayeeKind      string          `db:"payee_kind"`
	PayeeID        string          `db:"payee_id"`
	Amount         decimal.Decimal `db:"amount"`
	PaymentDate    time.Time       `db:"payment_date"`
	Method         string          `db:"method"`
	BankAccountID  *string         `db:"bank_account_id"`
	BankFee        decimal.Decimal `db:"bank_fee"`
	Reference      string          `db:"reference"`
	Memo           string          `db:"memo"`
	JournalEntryID *string         `db:"journal_entry_id"`
	AuditFields
}
