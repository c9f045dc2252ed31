package repositories

import (
	"context"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its unique ledger code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListActiveAccounts retrieves all accounts with IsActive set.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. The duplicate-code check and the insert
	// happen atomically; a code collision returns apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	// Returns apperrors.ErrNotFound when the account does not exist.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account unconditionally.
	// Returns false (without error) when the account does not exist.
	DeleteAccount(ctx context.Context, accountID string) (bool, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
