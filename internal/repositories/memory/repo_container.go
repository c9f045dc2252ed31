package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs the full set of in-memory repositories.
// The stores are owned by the caller and passed explicitly to the services
// that need them; there is no package-level state.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   NewAccountRepository(),
		JournalRepo:   NewJournalRepository(),
		LedgerKeyRepo: NewLedgerKeyRepository(),
	}
}

// SeedSampleData loads a small starter chart of accounts once at construction
// time. Only used when the store starts empty and seeding is enabled.
func SeedSampleData(ctx context.Context, logger *slog.Logger, repos portsrepo.RepositoryProvider) error {
	now := time.Now().UTC()
	samples := []domain.Account{
		{Code: "1000", Name: "Cash", AccountType: domain.Asset},
		{Code: "1100", Name: "Accounts Receivable", AccountType: domain.Asset},
		{Code: "2000", Name: "Accounts Payable", AccountType: domain.Liability},
		{Code: "3000", Name: "Owner's Equity", AccountType: domain.Equity},
		{Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue},
		{Code: "5000", Name: "Operating Expenses", AccountType: domain.Expense},
	}
	for _, acc := range samples {
		acc.AccountID = uuid.NewString()
		acc.Balance = decimal.Zero
		acc.IsActive = true
		acc.CreatedAt = now
		if err := repos.AccountRepo.SaveAccount(ctx, acc); err != nil {
			return err
		}
	}
	logger.Info("Seeded sample chart of accounts", slog.Int("account_count", len(samples)))
	return nil
}
