package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/RishabhDevDogra/Ledger-X/internal/repositories/memory"
)

func newAccount(code, name string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        name,
		AccountType: accountType,
		IsActive:    true,
	}
}

func TestAccountRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	acc := newAccount("1000", "Cash", domain.Asset)
	require.NoError(t, repo.SaveAccount(ctx, acc))

	byID, err := repo.FindAccountByID(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.Equal(t, acc, *byID)

	byCode, err := repo.FindAccountByCode(ctx, "1000")
	require.NoError(t, err)
	assert.Equal(t, acc.AccountID, byCode.AccountID)
}

func TestAccountRepository_DuplicateCodeRejected(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	require.NoError(t, repo.SaveAccount(ctx, newAccount("1000", "Cash", domain.Asset)))

	err := repo.SaveAccount(ctx, newAccount("1000", "Cash Again", domain.Asset))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAccountRepository_ConcurrentSaveSameCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.SaveAccount(ctx, newAccount("1000", fmt.Sprintf("Cash %d", i), domain.Asset))
		}(i)
	}
	wg.Wait()

	// Exactly one save wins; every other attempt sees the duplicate.
	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		}
	}
	assert.Equal(t, 1, successes)

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountRepository_ListSortedByCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	require.NoError(t, repo.SaveAccount(ctx, newAccount("5000", "Operating Expenses", domain.Expense)))
	require.NoError(t, repo.SaveAccount(ctx, newAccount("1000", "Cash", domain.Asset)))
	require.NoError(t, repo.SaveAccount(ctx, newAccount("2000", "Accounts Payable", domain.Liability)))

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "1000", accounts[0].Code)
	assert.Equal(t, "2000", accounts[1].Code)
	assert.Equal(t, "5000", accounts[2].Code)
}

func TestAccountRepository_ListActiveFiltersInactive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	active := newAccount("1000", "Cash", domain.Asset)
	inactive := newAccount("2000", "Old Payables", domain.Liability)
	inactive.IsActive = false

	require.NoError(t, repo.SaveAccount(ctx, active))
	require.NoError(t, repo.SaveAccount(ctx, inactive))

	accounts, err := repo.ListActiveAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "1000", accounts[0].Code)
}

func TestAccountRepository_UpdateKeepsCodeImmutable(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	acc := newAccount("1000", "Cash", domain.Asset)
	require.NoError(t, repo.SaveAccount(ctx, acc))

	acc.Code = "1111"
	acc.Name = "Renamed Cash"
	require.NoError(t, repo.UpdateAccount(ctx, acc))

	stored, err := repo.FindAccountByID(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "1000", stored.Code)
	assert.Equal(t, "Renamed Cash", stored.Name)

	// The original code still resolves.
	byCode, err := repo.FindAccountByCode(ctx, "1000")
	require.NoError(t, err)
	assert.Equal(t, acc.AccountID, byCode.AccountID)
}

func TestAccountRepository_UpdateUnknownReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	err := repo.UpdateAccount(ctx, newAccount("1000", "Cash", domain.Asset))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAccountRepository_DeleteFreesCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	acc := newAccount("1000", "Cash", domain.Asset)
	require.NoError(t, repo.SaveAccount(ctx, acc))

	deleted, err := repo.DeleteAccount(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Code is reusable after deletion.
	require.NoError(t, repo.SaveAccount(ctx, newAccount("1000", "Cash v2", domain.Asset)))

	deleted, err = repo.DeleteAccount(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
