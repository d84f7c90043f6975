package services

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
)

// CreditCardSvc defines operations for managing cards
type CreditCardSvc interface {
	CreateCreditCard(ctx context.Context, companyID string, req dto.CreateCreditCardRequest, userID string) (*domain.CreditCard, error)
	GetCreditCard(ctx context.Context, companyID string, cardID string) (*domain.CreditCard, error)
	ListCreditCards(ctx context.Context, companyID string) ([]domain.CreditCard, error)
}

// StatementImportSvc defines statement import operations
type StatementImportSvc interface {
	// ImportStatement classifies the file and stores the new rows for the card.
	ImportStatement(ctx context.Context, companyID string, cardID string, fileName string, data []byte, userID string) (*domain.ImportResult, error)

	// ListCardTransactions retrieves a page of imported transactions of a card.
	ListCardTransactions(ctx context.Context, companyID string, cardID string, params dto.ListCardTransactionsParams) (*dto.ListCardTransactionsResponse, error)
}

// ImportSvcFacade combines all card and import service interfaces
type ImportSvcFacade interface {
	CreditCardSvc
	StatementImportSvc
}
