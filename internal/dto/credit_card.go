package dto

import (
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateCreditCardRequest defines the data needed to register a card.
type CreateCreditCardRequest struct {
	Name     string `json:"name" binding:"required"`
	LastFour string `json:"lastFour" binding:"omitempty,len=4,numeric"`
}

// CreditCardResponse defines the data returned for a card.
type CreditCardResponse struct {
	CardID                   string     `json:"cardID"`
	Name                     string     `json:"name"`
	LastFour                 string     `json:"lastFour"`
	ImportCount              int        `json:"importCount"`
	ImportedTransactionCount int        `json:"importedTransactionCount"`
	LastImportAt             *time.Time `json:"lastImportAt,omitempty"`
	LastImportBy             *string    `json:"lastImportBy,omitempty"`
}

// CardTransactionResponse defines the data returned for an imported card transaction.
type CardTransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	TransactionDate time.Time              `json:"transactionDate"`
	PostDate        *time.Time             `json:"postDate,omitempty"`
	Description     string                 `json:"description"`
	Merchant        string                 `json:"merchant,omitempty"`
	Category        string                 `json:"category,omitempty"`
	Reference       string                 `json:"reference,omitempty"`
	Memo            string                 `json:"memo,omitempty"`
	Amount          decimal.Decimal        `json:"amount"`
	DisplayAmount   string                 `json:"displayAmount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	CodingStatus    domain.CodingStatus    `json:"codingStatus"`
	ImportBatchID   *string                `json:"importBatchID,omitempty"`
}

// ListCardTransactionsParams defines query parameters for listing card transactions.
type ListCardTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListCardTransactionsResponse wraps a page of card transactions.
type ListCardTransactionsResponse struct {
	Transactions []CardTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToCreditCardResponse converts a domain.CreditCard to its response DTO.
func ToCreditCardResponse(c *domain.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		CardID:                   c.CardID,
		Name:                     c.Name,
		LastFour:                 c.LastFour,
		ImportCount:              c.ImportCount,
		ImportedTransactionCount: c.ImportedTransactionCount,
		LastImportAt:             c.LastImportAt,
		LastImportBy:             c.LastImportBy,
	}
}

// ToListCreditCardResponse converts cards to response DTOs.
func ToListCreditCardResponse(cards []domain.CreditCard) []CreditCardResponse {
	res := make([]CreditCardResponse, len(cards))
	for i := range cards {
		res[i] = ToCreditCardResponse(&cards[i])
	}
	return res
}

// ToCardTransactionResponses converts card transactions to response DTOs.
func ToCardTransactionResponses(txns []domain.CreditCardTransaction) []CardTransactionResponse {
	res := make([]CardTransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = CardTransactionResponse{
			TransactionID:   t.TransactionID,
			TransactionDate: t.TransactionDate,
			PostDate:        t.PostDate,
			Description:     t.Description,
			Merchant:        t.Merchant,
			Category:        t.Category,
			Reference:       t.Reference,
			Memo:            t.Memo,
			Amount:          t.Amount,
			DisplayAmount:   money.FormatSigned(t.Amount, t.TransactionType.IsCredit()),
			TransactionType: t.TransactionType,
			CodingStatus:    t.CodingStatus,
			ImportBatchID:   t.ImportBatchID,
		}
	}
	return res
}
