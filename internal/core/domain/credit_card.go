package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard is a company card whose statements are imported.
type CreditCard struct {
	CardID                   string     `json:"cardID"`
	CompanyID                string     `json:"companyID"`
	Name                     string     `json:"name"`
	LastFour                 string     `json:"lastFour"`
	ImportCount              int        `json:"importCount"`
	ImportedTransactionCount int        `json:"importedTransactionCount"`
	LastImportAt             *time.Time `json:"lastImportAt,omitempty"`
	LastImportBy             *string    `json:"lastImportBy,omitempty"`
	AuditFields
}

// TransactionType carries the direction of a card transaction; amounts are magnitudes.
type TransactionType string

const (
	TxnPurchase   TransactionType = "purchase"
	TxnPayment    TransactionType = "payment"
	TxnRefund     TransactionType = "refund"
	TxnFee        TransactionType = "fee"
	TxnAdjustment TransactionType = "adjustment"
)

// IsCredit reports whether the type reduces the card balance.
func (t TransactionType) IsCredit() bool {
	return t == TxnPayment || t == TxnRefund
}

// CodingStatus tracks whether a transaction has been assigned to a cost code.
type CodingStatus string

const (
	Uncoded CodingStatus = "uncoded"
	Coded   CodingStatus = "coded"
)

// CreditCardTransaction is one canonical card statement line.
type CreditCardTransaction struct {
	TransactionID   string          `json:"transactionID"`
	CardID          string          `json:"cardID"`
	CompanyID       string          `json:"companyID"`
	TransactionDate time.Time       `json:"transactionDate"`
	PostDate        *time.Time      `json:"postDate,omitempty"`
	Description     string          `json:"description"`
	Merchant        string          `json:"merchant"`
	Category        string          `json:"category"`
	Reference       string          `json:"reference"`
	Memo            string          `json:"memo"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	CodingStatus    CodingStatus    `json:"codingStatus"`
	ImportedFromCSV bool            `json:"importedFromCSV"`
	DedupKey        string          `json:"dedupKey"`
	ImportBatchID   *string         `json:"importBatchID,omitempty"`
	AuditFields
}

// SignedAmount is the display value: credits are negative.
func (t CreditCardTransaction) SignedAmount() decimal.Decimal {
	if t.TransactionType.IsCredit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ImportBatch is the audit record of one statement upload.
type ImportBatch struct {
	BatchID        string    `json:"batchID"`
	CardID         string    `json:"cardID"`
	CompanyID      string    `json:"companyID"`
	FileName       string    `json:"fileName"`
	FileDigest     string    `json:"fileDigest"`
	Format         string    `json:"format"`
	TotalRows      int       `json:"totalRows"`
	ImportedCount  int       `json:"importedCount"`
	DuplicateCount int       `json:"duplicateCount"`
	SkippedCount   int       `json:"skippedCount"`
	ExcludedCount  int       `json:"excludedCount"`
	ImportedAt     time.Time `json:"importedAt"`
	ImportedBy     string    `json:"importedBy"`
}

// NoNewTransactionsMessage is reported when every row was a duplicate or unusable.
const NoNewTransactionsMessage = "no new transactions"

// ImportResult is returned to the caller of a statement import.
type ImportResult struct {
	BatchID        string   `json:"batchID,omitempty"`
	Format         string   `json:"format"`
	ImportedCount  int      `json:"importedCount"`
	DuplicateCount int      `json:"duplicateCount"`
	SkippedCount   int      `json:"skippedCount"`
	ExcludedCount  int      `json:"excludedCount"`
	Message        string   `json:"message,omitempty"`
	RowErrors      []string `json:"rowErrors,omitempty"`
}
