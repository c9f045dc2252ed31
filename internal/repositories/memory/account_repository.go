package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
)

// AccountRepository is a process-local account store. A single RWMutex covers the
// id map and the code index, so the duplicate-code check and the insert in
// SaveAccount are one atomic step.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account // keyed by AccountID
	byCode   map[string]string         // code -> AccountID
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account),
		byCode:   make(map[string]string),
	}
}

// Ensure AccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[account.Code]; exists {
		return fmt.Errorf("%w: account with code %q already exists", apperrors.ErrDuplicate, account.Code)
	}
	r.accounts[account.AccountID] = account
	r.byCode[account.Code] = account.AccountID
	return nil
}

func (r *AccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return &account, nil
}

func (r *AccountRepository) FindAccountByCode(_ context.Context, code string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("account code %q: %w", code, apperrors.ErrNotFound)
	}
	account := r.accounts[id]
	return &account, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.Account) bool { return true }), nil
}

func (r *AccountRepository) ListActiveAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(a domain.Account) bool { return a.IsActive }), nil
}

func (r *AccountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.accounts[account.AccountID]
	if !ok {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	// The code is immutable through UpdateAccount; keep the index consistent.
	account.Code = existing.Code
	r.accounts[account.AccountID] = account
	return nil
}

func (r *AccountRepository) DeleteAccount(_ context.Context, accountID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return false, nil
	}
	delete(r.accounts, accountID)
	delete(r.byCode, account.Code)
	return true, nil
}

// collect returns matching accounts sorted by code for stable listings.
// Callers must hold at least the read lock.
func (r *AccountRepository) collect(match func(domain.Account) bool) []domain.Account {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		if match(account) {
			out = append(out, account)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
