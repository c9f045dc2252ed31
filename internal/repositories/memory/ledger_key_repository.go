package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
)

// LedgerKeyRepository is a process-local encryption-key metadata store.
type LedgerKeyRepository struct {
	mu   sync.RWMutex
	keys map[string]domain.LedgerKey // keyed by KeyID
}

// NewLedgerKeyRepository creates an empty in-memory ledger key store.
func NewLedgerKeyRepository() *LedgerKeyRepository {
	return &LedgerKeyRepository{
		keys: make(map[string]domain.LedgerKey),
	}
}

// Ensure LedgerKeyRepository implements portsrepo.LedgerKeyRepositoryFacade
var _ portsrepo.LedgerKeyRepositoryFacade = (*LedgerKeyRepository)(nil)

func (r *LedgerKeyRepository) SaveKey(_ context.Context, key domain.LedgerKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keys[key.KeyID]; exists {
		return fmt.Errorf("%w: ledger key %s already exists", apperrors.ErrDuplicate, key.KeyID)
	}
	r.keys[key.KeyID] = key
	return nil
}

func (r *LedgerKeyRepository) FindKeyByID(_ context.Context, keyID string) (*domain.LedgerKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("ledger key %s: %w", keyID, apperrors.ErrNotFound)
	}
	return &key, nil
}

func (r *LedgerKeyRepository) ListKeys(_ context.Context) ([]domain.LedgerKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.LedgerKey) bool { return true }), nil
}

// ListActiveKeys: active flag set and no expiry, or expiry still ahead.
func (r *LedgerKeyRepository) ListActiveKeys(_ context.Context, now time.Time) ([]domain.LedgerKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(k domain.LedgerKey) bool {
		return k.IsActive && (k.ExpiresAt == nil || k.ExpiresAt.After(now))
	}), nil
}

// ListExpiredKeys: expiry set and passed, regardless of the active flag.
// Intentionally not the complement of ListActiveKeys.
func (r *LedgerKeyRepository) ListExpiredKeys(_ context.Context, now time.Time) ([]domain.LedgerKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(k domain.LedgerKey) bool {
		return k.IsExpired(now)
	}), nil
}

func (r *LedgerKeyRepository) UpdateKey(_ context.Context, key domain.LedgerKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keys[key.KeyID]; !ok {
		return fmt.Errorf("ledger key %s: %w", key.KeyID, apperrors.ErrNotFound)
	}
	r.keys[key.KeyID] = key
	return nil
}

func (r *LedgerKeyRepository) DeleteKey(_ context.Context, keyID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.keys[keyID]; !ok {
		return false, nil
	}
	delete(r.keys, keyID)
	return true, nil
}

// collect returns matching keys sorted by creation time then id.
// Callers must hold at least the read lock.
func (r *LedgerKeyRepository) collect(match func(domain.LedgerKey) bool) []domain.LedgerKey {
	out := make([]domain.LedgerKey, 0, len(r.keys))
	for _, key := range r.keys {
		if match(key) {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].KeyID < out[j].KeyID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
