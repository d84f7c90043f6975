package pgsql

import (
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	creditCardRepo := newPgxCreditCardRepository(dbPool)
	reconciliationRepo := newPgxReconciliationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:        companyRepo,
		AccountRepo:        accountRepo,
		JournalRepo:        journalRepo,
		PaymentRepo:        paymentRepo,
		CreditCardRepo:     creditCardRepo,
		ReconciliationRepo: reconciliationRepo,
	}
}
