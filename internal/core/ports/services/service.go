package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and CLI commands.
type ServiceContainer struct {
	Company        CompanySvcFacade
	Account        AccountSvcFacade
	Journal        JournalSvcFacade
	Payment        PaymentSvcFacade
	Import         ImportSvcFacade
	Reconciliation ReconciliationSvcFacade
}
