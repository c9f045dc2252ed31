package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/RishabhDevDogra/Ledger-X/internal/repositories/memory"
)

func newEntry(entryDate time.Time) domain.JournalEntry {
	entryID := uuid.NewString()
	amount := decimal.RequireFromString("100.00")
	return domain.JournalEntry{
		EntryID:         entryID,
		Description:     "Test entry",
		ReferenceNumber: "REF-1",
		EntryDate:       entryDate,
		CreatedAt:       time.Now().UTC(),
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "1000", Debit: amount},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "4000", Credit: amount},
		},
	}
}

func TestJournalRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	entry := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveEntry(ctx, entry))

	found, err := repo.FindEntryByID(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.Equal(t, entry.EntryID, found.EntryID)
	assert.Len(t, found.Lines, 2)

	_, err = repo.FindEntryByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJournalRepository_ReturnedLinesAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	entry := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveEntry(ctx, entry))

	found, err := repo.FindEntryByID(ctx, entry.EntryID)
	require.NoError(t, err)
	found.Lines[0].AccountCode = "TAMPERED"

	again, err := repo.FindEntryByID(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.Equal(t, "1000", again.Lines[0].AccountCode)
}

func TestJournalRepository_MarkEntryPostedIsOneShot(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	entry := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveEntry(ctx, entry))

	posted, err := repo.MarkEntryPosted(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.True(t, posted)

	posted, err = repo.MarkEntryPosted(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.False(t, posted)

	posted, err = repo.MarkEntryPosted(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, posted)
}

func TestJournalRepository_ConcurrentPostSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	entry := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveEntry(ctx, entry))

	const workers = 16
	var wg sync.WaitGroup
	results := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			posted, err := repo.MarkEntryPosted(ctx, entry.EntryID)
			require.NoError(t, err)
			results[i] = posted
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, posted := range results {
		if posted {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestJournalRepository_ListPostedEntriesExcludesDrafts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	draft := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	toPost := newEntry(time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveEntry(ctx, draft))
	require.NoError(t, repo.SaveEntry(ctx, toPost))

	_, err := repo.MarkEntryPosted(ctx, toPost.EntryID)
	require.NoError(t, err)

	posted, err := repo.ListPostedEntries(ctx)
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.Equal(t, toPost.EntryID, posted[0].EntryID)

	all, err := repo.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestJournalRepository_ListEntriesByDateRangeInclusive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	before := newEntry(time.Date(2024, 7, 31, 23, 59, 59, 0, time.UTC))
	onStart := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	inside := newEntry(time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC))
	onEnd := newEntry(time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC))
	after := newEntry(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))

	for _, e := range []domain.JournalEntry{before, onStart, inside, onEnd, after} {
		require.NoError(t, repo.SaveEntry(ctx, e))
	}

	start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)

	entries, err := repo.ListEntriesByDateRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	ids := map[string]bool{}
	for _, e := range entries {
		ids[e.EntryID] = true
	}
	assert.True(t, ids[onStart.EntryID])
	assert.True(t, ids[inside.EntryID])
	assert.True(t, ids[onEnd.EntryID])
}

func TestJournalRepository_DeleteEntry(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJournalRepository()

	entry := newEntry(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.SaveEntry(ctx, entry))

	deleted, err := repo.DeleteEntry(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteEntry(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindEntryByID(ctx, entry.EntryID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
