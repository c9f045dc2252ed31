package services

import (
	"context"
	"time"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
)

// JournalSvcFacade defines the journal entry operations and the double-entry
// validation core. An entry is a Draft until posted; Posted is terminal.
type JournalSvcFacade interface {
	// CreateEntry validates a journal entry (blank fields, line count, sign rules,
	// balance within tolerance) and persists it as a draft.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// GetEntryByID retrieves a single entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves all journal entries.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ListPostedEntries retrieves posted entries only.
	ListPostedEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ListEntriesByDateRange retrieves entries dated within [start, end].
	ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.JournalEntry, error)

	// UpdateEntry edits a draft entry's description.
	// A posted entry yields apperrors.ErrEntryPosted.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)

	// PostEntry transitions a draft to posted. Returns false (without error) when
	// the entry is unknown or already posted; posting is not retried or errored on
	// the second call.
	PostEntry(ctx context.Context, entryID string) (bool, error)

	// DeleteEntry removes a draft entry. A posted entry yields
	// apperrors.ErrEntryPosted; an unknown id returns false without error.
	DeleteEntry(ctx context.Context, entryID string) (bool, error)
}
