package dto

import (
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest defines a manually entered journal entry.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time            `json:"entryDate" binding:"required"`
	Reference   string               `json:"reference"`
	Description string               `json:"description" binding:"required"`
	Status      domain.EntryStatus   `json:"status" binding:"omitempty,oneof=DRAFT POSTED"` // Defaults to DRAFT
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineRequest is one line of a manual entry. Exactly one side carries an amount.
type JournalLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount" binding:"dgte0"`
	CreditAmount decimal.Decimal `json:"creditAmount" binding:"dgte0"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	LineOrder    int             `json:"lineOrder"`
	IsReconciled bool            `json:"isReconciled"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID           string                `json:"entryID"`
	CompanyID         string                `json:"companyID"`
	EntryDate         time.Time             `json:"entryDate"`
	Reference         string                `json:"reference"`
	Description       string                `json:"description"`
	Status            domain.EntryStatus    `json:"status"`
	TotalDebit        decimal.Decimal       `json:"totalDebit"`
	TotalCredit       decimal.Decimal       `json:"totalCredit"`
	ReversedByEntryID *string               `json:"reversedByEntryID,omitempty"`
	ReversalDate      *time.Time            `json:"reversalDate,omitempty"`
	ReversalOfEntryID *string               `json:"reversalOfEntryID,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	CreatedBy         string                `json:"createdBy"`
	Lines             []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesParams defines query parameters for listing entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts an entry and its lines to the response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry, lines []domain.JournalEntryLine) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:           e.EntryID,
		CompanyID:         e.CompanyID,
		EntryDate:         e.EntryDate,
		Reference:         e.Reference,
		Description:       e.Description,
		Status:            e.Status,
		TotalDebit:        e.TotalDebit,
		TotalCredit:       e.TotalCredit,
		ReversedByEntryID: e.ReversedByEntryID,
		ReversalDate:      e.ReversalDate,
		ReversalOfEntryID: e.ReversalOfEntryID,
		CreatedAt:         e.CreatedAt,
		CreatedBy:         e.CreatedBy,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			LineID:       l.LineID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			LineOrder:    l.LineOrder,
			IsReconciled: l.IsReconciled,
		})
	}
	return resp
}
