package dto

import (
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	Institution string `json:"institution"`
	LastFour    string `json:"lastFour" binding:"omitempty,len=4,numeric"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string `json:"bankAccountID"`
	Name          string `json:"name"`
	Institution   string `json:"institution"`
	LastFour      string `json:"lastFour"`
	IsActive      bool   `json:"isActive"`
}

// CreateReconciliationRequest opens a session for one statement period.
// BeginningBalance defaults to the last reconciled ending balance.
type CreateReconciliationRequest struct {
	BankAccountID    string           `json:"bankAccountID" binding:"required"`
	PeriodStart      time.Time        `json:"periodStart" binding:"required"`
	PeriodEnd        time.Time        `json:"periodEnd" binding:"required,gtefield=PeriodStart"`
	BeginningBalance *decimal.Decimal `json:"beginningBalance"`
	EndingBalance    decimal.Decimal  `json:"endingBalance"`
}

// CandidateRefRequest names one payment or journal line to clear.
type CandidateRefRequest struct {
	SourceKind domain.SourceKind `json:"sourceKind" binding:"required,oneof=PAYMENT JOURNAL_LINE"`
	SourceID   string            `json:"sourceID" binding:"required"`
}

// ClearSelectionRequest is the set of candidates the user ticked off.
type ClearSelectionRequest struct {
	Cleared []CandidateRefRequest `json:"cleared" binding:"dive"`
}

// ReconciliationResponse defines the data returned for a session.
type ReconciliationResponse struct {
	ReconciliationID string                      `json:"reconciliationID"`
	BankAccountID    string                      `json:"bankAccountID"`
	PeriodStart      time.Time                   `json:"periodStart"`
	PeriodEnd        time.Time                   `json:"periodEnd"`
	BeginningBalance decimal.Decimal             `json:"beginningBalance"`
	EndingBalance    decimal.Decimal             `json:"endingBalance"`
	Status           domain.ReconciliationStatus `json:"status"`
	ReconciledAt     *time.Time                  `json:"reconciledAt,omitempty"`
	ReconciledBy     *string                     `json:"reconciledBy,omitempty"`
}

// CandidateResponse is a clearable item as shown in a report.
type CandidateResponse struct {
	SourceKind    domain.SourceKind `json:"sourceKind"`
	SourceID      string            `json:"sourceID"`
	Date          time.Time         `json:"date"`
	Description   string            `json:"description"`
	Reference     string            `json:"reference"`
	Direction     domain.Direction  `json:"direction"`
	Amount        decimal.Decimal   `json:"amount"`
	DisplayAmount string            `json:"displayAmount"`
}

// ReconciliationReportResponse is the cleared/uncleared partition with balances.
type ReconciliationReportResponse struct {
	Reconciliation     ReconciliationResponse `json:"reconciliation"`
	Cleared            []CandidateResponse    `json:"cleared"`
	Uncleared          []CandidateResponse    `json:"uncleared"`
	ClearedDeposits    decimal.Decimal        `json:"clearedDeposits"`
	ClearedWithdrawals decimal.Decimal        `json:"clearedWithdrawals"`
	ClearedBalance     decimal.Decimal        `json:"clearedBalance"`
	Difference         decimal.Decimal        `json:"difference"`
	IsBalanced         bool                   `json:"isBalanced"`
}

// ToCandidateRefs converts the request selection to domain references.
func (r ClearSelectionRequest) ToCandidateRefs() []domain.CandidateRef {
	refs := make([]domain.CandidateRef, len(r.Cleared))
	for i, c := range r.Cleared {
		refs[i] = domain.CandidateRef{SourceKind: c.SourceKind, SourceID: c.SourceID}
	}
	return refs
}

// ToBankAccountResponse converts a domain.BankAccount to its response DTO.
func ToBankAccountResponse(b *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: b.BankAccountID,
		Name:          b.Name,
		Institution:   b.Institution,
		LastFour:      b.LastFour,
		IsActive:      b.IsActive,
	}
}

// ToListBankAccountResponse converts bank accounts to response DTOs.
func ToListBankAccountResponse(accounts []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToBankAccountResponse(&accounts[i])
	}
	return res
}

// ToReconciliationResponse converts a session to its response DTO.
func ToReconciliationResponse(r *domain.BankReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ReconciliationID: r.ReconciliationID,
		BankAccountID:    r.BankAccountID,
		PeriodStart:      r.PeriodStart,
		PeriodEnd:        r.PeriodEnd,
		BeginningBalance: r.BeginningBalance,
		EndingBalance:    r.EndingBalance,
		Status:           r.Status,
		ReconciledAt:     r.ReconciledAt,
		ReconciledBy:     r.ReconciledBy,
	}
}

// ToListReconciliationResponse converts sessions to response DTOs.
func ToListReconciliationResponse(recons []domain.BankReconciliation) []ReconciliationResponse {
	res := make([]ReconciliationResponse, len(recons))
	for i := range recons {
		res[i] = ToReconciliationResponse(&recons[i])
	}
	return res
}

// ToReconciliationReportResponse converts a report to its response DTO.
func ToReconciliationReportResponse(r *domain.ReconciliationReport) ReconciliationReportResponse {
	return ReconciliationReportResponse{
		Reconciliation:     ToReconciliationResponse(&r.Reconciliation),
		Cleared:            toCandidateResponses(r.Cleared),
		Uncleared:          toCandidateResponses(r.Uncleared),
		ClearedDeposits:    r.ClearedDeposits,
		ClearedWithdrawals: r.ClearedWithdrawals,
		ClearedBalance:     r.ClearedBalance,
		Difference:         r.Difference,
		IsBalanced:         r.IsBalanced(),
	}
}

func toCandidateResponses(cs []domain.ReconciliationCandidate) []CandidateResponse {
	res := make([]CandidateResponse, len(cs))
	for i, c := range cs {
		res[i] = CandidateResponse{
			SourceKind:    c.SourceKind,
			SourceID:      c.SourceID,
			Date:          c.Date,
			Description:   c.Description,
			Reference:     c.Reference,
			Direction:     c.Direction,
			Amount:        c.Amount,
			DisplayAmount: money.FormatSigned(c.Amount, c.Direction == domain.Withdrawal),
		}
	}
	return res
}
