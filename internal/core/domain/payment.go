package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayeeKind identifies what a payment settles.
type PayeeKind string

const (
	PayeeVendor     PayeeKind = "VENDOR"
	PayeeCreditCard PayeeKind = "CREDIT_CARD"
)

// PaymentMethod is how the money left the bank.
type PaymentMethod string

const (
	MethodCheck PaymentMethod = "CHECK"
	MethodACH   PaymentMethod = "ACH"
	MethodWire  PaymentMethod = "WIRE"
	MethodCard  PaymentMethod = "CARD"
	MethodCash  PaymentMethod = "CASH"
	MethodOther PaymentMethod = "OTHER"
)

// Payment is a settlement to a vendor or a credit card.
// JournalEntryID is claimed at most once by the posting procedure.
type Payment struct {
	PaymentID      string          `json:"paymentID"`
	CompanyID      string          `json:"companyID"`
	PayeeKind      PayeeKind       `json:"payeeKind"`
	PayeeID        string          `json:"payeeID"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"paymentDate"`
	Method         PaymentMethod   `json:"method"`
	BankAccountID  *string         `json:"bankAccountID,omitempty"`
	BankFee        decimal.Decimal `json:"bankFee"`
	Reference      string          `json:"reference"`
	Memo           string          `json:"memo"`
	JournalEntryID *string         `json:"journalEntryID,omitempty"`
	AuditFields
}

// HasFee reports whether the payment carries a positive bank fee.
func (p Payment) HasFee() bool {
	return p.BankFee.IsPositive()
}

// TotalOutflow is what leaves the bank account: the amount plus any fee.
func (p Payment) TotalOutflow() decimal.Decimal {
	if p.HasFee() {
		return p.Amount.Add(p.BankFee)
	}
	return p.Amount
}

// IsPosted reports whether the payment already has a journal entry.
func (p Payment) IsPosted() bool {
	return p.JournalEntryID != nil
}

// PostingResult is the outcome of running the compiler for one payment.
type PostingResult struct {
	Payment  Payment       `json:"payment"`
	Entry    *JournalEntry `json:"entry,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
	// Error is set when the payment was stored but could not be posted.
	Error string `json:"error,omitempty"`
}

// BackfillResult summarizes a bulk posting run.
type BackfillResult struct {
	Scanned       int               `json:"scanned"`
	Posted        int               `json:"posted"`
	AlreadyPosted int               `json:"alreadyPosted"`
	Failed        int               `json:"failed"`
	Failures      []BackfillFailure `json:"failures,omitempty"`
}

// BackfillFailure records why one payment was not posted.
type BackfillFailure struct {
	PaymentID string `json:"paymentID"`
	Error     string `json:"error"`
}
