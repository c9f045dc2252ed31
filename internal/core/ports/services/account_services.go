package services

import (
	"context"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
)

// AccountSvcFacade defines the account validation and lifecycle operations.
type AccountSvcFacade interface {
	// CreateAccount validates and persists a new account.
	// Blank code/name/type or an unknown type yields apperrors.ErrValidation;
	// an existing code yields apperrors.ErrDuplicate.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a single account by identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves a single account by its unique code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListActiveAccounts retrieves all active accounts.
	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount overwrites only the fields supplied in the request.
	// Empty-string name/type mean "no change".
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account unconditionally.
	// Returns false (without error) when the account does not exist.
	DeleteAccount(ctx context.Context, accountID string) (bool, error)
}
