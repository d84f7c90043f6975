package dto

import (
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	PayeeKind     domain.PayeeKind     `json:"payeeKind" binding:"required,oneof=VENDOR CREDIT_CARD"`
	PayeeID       string               `json:"payeeID" binding:"required"`
	Amount        decimal.Decimal      `json:"amount" binding:"dgt0"`
	PaymentDate   time.Time            `json:"paymentDate" binding:"required"`
	Method        domain.PaymentMethod `json:"method" binding:"required,oneof=CHECK ACH WIRE CARD CASH OTHER"`
	BankAccountID *string              `json:"bankAccountID"`
	BankFee       decimal.Decimal      `json:"bankFee" binding:"dgte0"`
	Reference     string               `json:"reference"`
	Memo          string               `json:"memo"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID      string               `json:"paymentID"`
	CompanyID      string               `json:"companyID"`
	PayeeKind      domain.PayeeKind     `json:"payeeKind"`
	PayeeID        string               `json:"payeeID"`
	Amount         decimal.Decimal      `json:"amount"`
	PaymentDate    time.Time            `json:"paymentDate"`
	Method         domain.PaymentMethod `json:"method"`
	BankAccountID  *string              `json:"bankAccountID,omitempty"`
	BankFee        decimal.Decimal      `json:"bankFee"`
	Reference      string               `json:"reference"`
	Memo           string               `json:"memo"`
	JournalEntryID *string              `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
}

// PostingResponse is a payment with the outcome of posting it.
// PostingError is set when the payment exists but has no entry yet.
type PostingResponse struct {
	Payment        PaymentResponse `json:"payment"`
	JournalEntryID *string         `json:"journalEntryID,omitempty"`
	Warnings       []string        `json:"warnings,omitempty"`
	PostingError   string          `json:"postingError,omitempty"`
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// BackfillRequest bounds a bulk posting run.
type BackfillRequest struct {
	Limit int `json:"limit" binding:"omitempty,min=1,max=5000"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:      p.PaymentID,
		CompanyID:      p.CompanyID,
		PayeeKind:      p.PayeeKind,
		PayeeID:        p.PayeeID,
		Amount:         p.Amount,
		PaymentDate:    p.PaymentDate,
		Method:         p.Method,
		BankAccountID:  p.BankAccountID,
		BankFee:        p.BankFee,
		Reference:      p.Reference,
		Memo:           p.Memo,
		JournalEntryID: p.JournalEntryID,
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
	}
}

// ToPostingResponse converts a posting result to its response DTO.
func ToPostingResponse(r *domain.PostingResult) PostingResponse {
	resp := PostingResponse{
		Payment:        ToPaymentResponse(&r.Payment),
		JournalEntryID: r.Payment.JournalEntryID,
		Warnings:       r.Warnings,
		PostingError:   r.Error,
	}
	if r.Entry != nil {
		id := r.Entry.EntryID
		resp.JournalEntryID = &id
	}
	return resp
}

// ToListPaymentResponse converts payments to response DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
