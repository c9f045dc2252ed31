package services

import (
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.JournalRepo)
	container.LedgerKey = NewLedgerKeyService(repos.LedgerKeyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade   = (*accountService)(nil)
	_ portssvc.JournalSvcFacade   = (*journalService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
	_ portssvc.LedgerKeySvcFacade = (*ledgerKeyService)(nil)
)
