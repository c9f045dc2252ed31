package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
)

const keyByteLength = 32 // 256-bit key material

// ledgerKeyService implements the LedgerKeySvcFacade interface
type ledgerKeyService struct {
	BaseService
	keyRepo portsrepo.LedgerKeyRepositoryFacade
}

// NewLedgerKeyService creates a new ledger key service.
func NewLedgerKeyService(repo portsrepo.LedgerKeyRepositoryFacade) portssvc.LedgerKeySvcFacade {
	return &ledgerKeyService{
		keyRepo: repo,
	}
}

// Ensure ledgerKeyService implements the LedgerKeySvcFacade interface
var _ portssvc.LedgerKeySvcFacade = (*ledgerKeyService)(nil)

// generateKeyMaterial returns base64-encoded cryptographically random bytes.
func generateKeyMaterial(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func (s *ledgerKeyService) CreateKey(ctx context.Context, req dto.CreateLedgerKeyRequest) (*domain.LedgerKey, error) {
	if strings.TrimSpace(req.KeyName) == "" {
		return nil, fmt.Errorf("%w: key name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return nil, fmt.Errorf("%w: expiry must be strictly in the future", apperrors.ErrValidation)
	}

	material, err := generateKeyMaterial(keyByteLength)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate key material")
		return nil, err
	}

	key := domain.LedgerKey{
		KeyID:         uuid.NewString(),
		KeyName:       strings.TrimSpace(req.KeyName),
		EncryptionKey: material,
		CreatedAt:     now,
		ExpiresAt:     req.ExpiresAt,
		IsActive:      true,
	}

	if err := s.keyRepo.SaveKey(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to save ledger key", slog.String("key_id", key.KeyID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger key created", slog.String("key_id", key.KeyID), slog.String("key_name", key.KeyName))
	return &key, nil
}

func (s *ledgerKeyService) GetKeyByID(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	key, err := s.keyRepo.FindKeyByID(ctx, keyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger key by ID", slog.String("key_id", keyID))
		}
		return nil, err
	}
	return key, nil
}

func (s *ledgerKeyService) ListKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	keys, err := s.keyRepo.ListKeys(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger keys")
		return nil, fmt.Errorf("failed to list ledger keys: %w", err)
	}
	if keys == nil {
		return []domain.LedgerKey{}, nil
	}
	return keys, nil
}

func (s *ledgerKeyService) ListActiveKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	keys, err := s.keyRepo.ListActiveKeys(ctx, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to list active ledger keys")
		return nil, fmt.Errorf("failed to list active ledger keys: %w", err)
	}
	if keys == nil {
		return []domain.LedgerKey{}, nil
	}
	return keys, nil
}

func (s *ledgerKeyService) ListExpiredKeys(ctx context.Context) ([]domain.LedgerKey, error) {
	keys, err := s.keyRepo.ListExpiredKeys(ctx, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to list expired ledger keys")
		return nil, fmt.Errorf("failed to list expired ledger keys: %w", err)
	}
	if keys == nil {
		return []domain.LedgerKey{}, nil
	}
	return keys, nil
}

// RotateKey replaces the key material with a freshly generated value. Name,
// expiry, and the active flag are left untouched.
func (s *ledgerKeyService) RotateKey(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	key, err := s.GetKeyByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	material, err := generateKeyMaterial(keyByteLength)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate key material for rotation", slog.String("key_id", keyID))
		return nil, err
	}
	key.EncryptionKey = material

	if err := s.keyRepo.UpdateKey(ctx, *key); err != nil {
		s.LogError(ctx, err, "Failed to rotate ledger key", slog.String("key_id", keyID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger key rotated", slog.String("key_id", keyID))
	return key, nil
}

// DeactivateKey flips IsActive off. One-way: there is no reactivate operation.
func (s *ledgerKeyService) DeactivateKey(ctx context.Context, keyID string) (*domain.LedgerKey, error) {
	key, err := s.GetKeyByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	key.IsActive = false
	if err := s.keyRepo.UpdateKey(ctx, *key); err != nil {
		s.LogError(ctx, err, "Failed to deactivate ledger key", slog.String("key_id", keyID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger key deactivated", slog.String("key_id", keyID))
	return key, nil
}

func (s *ledgerKeyService) DeleteKey(ctx context.Context, keyID string) (bool, error) {
	deleted, err := s.keyRepo.DeleteKey(ctx, keyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete ledger key", slog.String("key_id", keyID))
		return false, err
	}
	if deleted {
		s.LogInfo(ctx, "Ledger key deleted", slog.String("key_id", keyID))
	}
	return deleted, nil
}
