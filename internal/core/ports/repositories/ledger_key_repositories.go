package repositories

import (
	"context"
	"time"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
)

// LedgerKeyReader defines read operations for encryption-key metadata
type LedgerKeyReader interface {
	// FindKeyByID retrieves a specific ledger key by its unique identifier.
	FindKeyByID(ctx context.Context, keyID string) (*domain.LedgerKey, error)

	// ListKeys retrieves all ledger keys.
	ListKeys(ctx context.Context) ([]domain.LedgerKey, error)

	// ListActiveKeys retrieves keys that are active and not past their expiry.
	ListActiveKeys(ctx context.Context, now time.Time) ([]domain.LedgerKey, error)

	// ListExpiredKeys retrieves keys whose expiry is set and has passed.
	// Note: not the complement of ListActiveKeys; an inactive, unexpired key
	// appears in neither listing.
	ListExpiredKeys(ctx context.Context, now time.Time) ([]domain.LedgerKey, error)
}

// LedgerKeyWriter defines write operations for encryption-key metadata
type LedgerKeyWriter interface {
	// SaveKey persists a new ledger key.
	SaveKey(ctx context.Context, key domain.LedgerKey) error

	// UpdateKey updates an existing ledger key.
	// Returns apperrors.ErrNotFound when the key does not exist.
	UpdateKey(ctx context.Context, key domain.LedgerKey) error

	// DeleteKey removes a ledger key.
	// Returns false (without error) when the key does not exist.
	DeleteKey(ctx context.Context, keyID string) (bool, error)
}

// LedgerKeyRepositoryFacade combines all ledger-key repository interfaces.
type LedgerKeyRepositoryFacade interface {
	LedgerKeyReader
	LedgerKeyWriter
}
