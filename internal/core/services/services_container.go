package services

import (
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/importer"
	"github.com/SscSPs/sitebooks_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Every company scoped service checks the company exists first
	scoped := WithCompanyReader(repos.CompanyRepo)

	container.Company = NewCompanyService(repos.CompanyRepo)

	// Bank accounts live with reconciliations; mappings validate CASH subjects against them
	container.Account = NewAccountService(repos.AccountRepo, repos.ReconciliationRepo, scoped)

	container.Journal = NewJournalService(repos.JournalRepo, repos.PaymentRepo, repos.AccountRepo, scoped)

	// Payments resolve their posting accounts through the account service
	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.JournalRepo,
		repos.ReconciliationRepo,
		container.Account,
		scoped,
	)

	container.Import = NewImportService(
		repos.CreditCardRepo,
		importer.NewClassifier(cfg.NegativePaymentRule),
		cfg.MaxImportBytes,
		scoped,
	)

	container.Reconciliation = NewReconciliationService(repos.ReconciliationRepo, scoped)

	return container
}
