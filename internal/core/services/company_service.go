package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/google/uuid"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade, opts ...Option) portssvc.CompanySvcFacade {
	svc := &companyService{companyRepo: repo}
	svc.apply(opts)
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        name,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *companyService) ListCompanies(ctx context.Context, limit int, offset int) ([]domain.Company, error) {
	return s.companyRepo.ListCompanies(ctx, limit, offset)
}
