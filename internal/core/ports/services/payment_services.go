package services

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	// GetPayment retrieves a payment, posting it first if it has no entry yet.
	GetPayment(ctx context.Context, companyID string, paymentID string, userID string) (*domain.PostingResult, error)

	// ListPayments retrieves a page of payments.
	ListPayments(ctx context.Context, companyID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	// CreatePayment stores the payment and tries to post it. A posting failure
	// does not fail the call; it is reported on the result.
	CreatePayment(ctx context.Context, companyID string, req dto.CreatePaymentRequest, userID string) (*domain.PostingResult, error)
}

// PaymentPosterSvc defines the journal posting operations for payments
type PaymentPosterSvc interface {
	// PostPayment compiles and persists the payment's journal entry.
	PostPayment(ctx context.Context, companyID string, paymentID string, userID string) (*domain.PostingResult, error)

	// BackfillPayments posts every payment still missing an entry, up to limit.
	BackfillPayments(ctx context.Context, companyID string, limit int, userID string) (*domain.BackfillResult, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
	PaymentPosterSvc
}
