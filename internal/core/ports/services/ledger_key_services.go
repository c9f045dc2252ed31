package services

import (
	"context"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
)

// LedgerKeySvcFacade defines the encryption-key lifecycle operations.
// Key material is generated and stored as metadata; nothing else consumes it.
type LedgerKeySvcFacade interface {
	// CreateKey validates the name and optional expiry (strictly in the future)
	// and stores a key backed by 32 fresh random bytes.
	CreateKey(ctx context.Context, req dto.CreateLedgerKeyRequest) (*domain.LedgerKey, error)

	// GetKeyByID retrieves a single key by identifier.
	GetKeyByID(ctx context.Context, keyID string) (*domain.LedgerKey, error)

	// ListKeys retrieves all keys.
	ListKeys(ctx context.Context) ([]domain.LedgerKey, error)

	// ListActiveKeys retrieves keys that are active and unexpired.
	ListActiveKeys(ctx context.Context) ([]domain.LedgerKey, error)

	// ListExpiredKeys retrieves keys whose expiry has passed. Deliberately not
	// the complement of ListActiveKeys.
	ListExpiredKeys(ctx context.Context) ([]domain.LedgerKey, error)

	// RotateKey replaces the key material only; name, expiry, and active flag
	// are untouched. An unknown id yields apperrors.ErrNotFound.
	RotateKey(ctx context.Context, keyID string) (*domain.LedgerKey, error)

	// DeactivateKey flips IsActive off. There is no reactivate operation.
	DeactivateKey(ctx context.Context, keyID string) (*domain.LedgerKey, error)

	// DeleteKey removes a key. Returns false (without error) when unknown.
	DeleteKey(ctx context.Context, keyID string) (bool, error)
}
