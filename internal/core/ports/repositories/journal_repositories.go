package repositories

import (
	"context"
	"time"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry, lines included.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves all journal entries, lines included.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ListPostedEntries retrieves all posted journal entries, lines included.
	// Drafts never appear here; reports are computed over this set.
	ListPostedEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ListEntriesByDateRange retrieves entries whose EntryDate falls within
	// [start, end] inclusive.
	ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.JournalEntry, error)
}

// JournalEntryWriter defines write operations for journal entry data
type JournalEntryWriter interface {
	// SaveEntry persists a new journal entry together with its lines.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntry updates mutable fields of a draft entry.
	// Returns apperrors.ErrNotFound when the entry does not exist.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// MarkEntryPosted flips a draft entry to posted. The check and the flip are
	// atomic; returns false (without error) when the entry is unknown or already
	// posted.
	MarkEntryPosted(ctx context.Context, entryID string) (bool, error)

	// DeleteEntry removes an entry and its lines.
	// Returns false (without error) when the entry does not exist.
	DeleteEntry(ctx context.Context, entryID string) (bool, error)
}

// JournalEntryRepositoryFacade combines all journal-entry repository interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
