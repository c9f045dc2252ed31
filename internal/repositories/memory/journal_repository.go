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

// JournalRepository is a process-local journal entry store. Entries are stored
// with their lines; copies are made on the way in and out so callers can never
// mutate stored state through a returned slice.
type JournalRepository struct {
	mu      sync.RWMutex
	entries map[string]domain.JournalEntry // keyed by EntryID
}

// NewJournalRepository creates an empty in-memory journal entry store.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		entries: make(map[string]domain.JournalEntry),
	}
}

// Ensure JournalRepository implements portsrepo.JournalEntryRepositoryFacade
var _ portsrepo.JournalEntryRepositoryFacade = (*JournalRepository)(nil)

func copyEntry(e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(e.Lines))
	copy(lines, e.Lines)
	e.Lines = lines
	return e
}

func (r *JournalRepository) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.EntryID]; exists {
		return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, entry.EntryID)
	}
	r.entries[entry.EntryID] = copyEntry(entry)
	return nil
}

func (r *JournalRepository) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	out := copyEntry(entry)
	return &out, nil
}

func (r *JournalRepository) ListEntries(_ context.Context) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.JournalEntry) bool { return true }), nil
}

func (r *JournalRepository) ListPostedEntries(_ context.Context) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(e domain.JournalEntry) bool { return e.IsPosted }), nil
}

func (r *JournalRepository) ListEntriesByDateRange(_ context.Context, start, end time.Time) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(e domain.JournalEntry) bool {
		return !e.EntryDate.Before(start) && !e.EntryDate.After(end)
	}), nil
}

func (r *JournalRepository) UpdateEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.EntryID]; !ok {
		return fmt.Errorf("journal entry %s: %w", entry.EntryID, apperrors.ErrNotFound)
	}
	r.entries[entry.EntryID] = copyEntry(entry)
	return nil
}

// MarkEntryPosted performs the already-posted check and the flip under the
// write lock, which makes posting idempotent-safe for concurrent callers.
func (r *JournalRepository) MarkEntryPosted(_ context.Context, entryID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[entryID]
	if !ok || entry.IsPosted {
		return false, nil
	}
	entry.IsPosted = true
	r.entries[entryID] = entry
	return true, nil
}

func (r *JournalRepository) DeleteEntry(_ context.Context, entryID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entryID]; !ok {
		return false, nil
	}
	delete(r.entries, entryID)
	return true, nil
}

// collect returns matching entries sorted by creation time then id for stable
// listings. Callers must hold at least the read lock.
func (r *JournalRepository) collect(match func(domain.JournalEntry) bool) []domain.JournalEntry {
	out := make([]domain.JournalEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		if match(entry) {
			out = append(out, copyEntry(entry))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].EntryID < out[j].EntryID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
