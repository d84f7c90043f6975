package repositories

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
)

// CompanyReader defines read operations for companies
type CompanyReader interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error)
}

// CompanyWriter defines write operations for companies
type CompanyWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines company reads and writes
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
