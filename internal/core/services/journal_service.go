package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RishabhDevDogra/Ledger-X/internal/apperrors"
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
)

// balanceTolerance absorbs fixed-point rounding in submitted amounts. Comparisons
// use decimal arithmetic throughout; binary floats would report spurious imbalance.
var balanceTolerance = decimal.RequireFromString("0.01")

// journalService provides the journal entry operations and the double-entry core.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalEntryRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalEntryRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines enforces the per-line invariants: a non-blank account code,
// non-negative amounts, and strictly one side per line.
func (s *journalService) validateLines(lines []dto.CreateJournalLineRequest) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}
	for i, line := range lines {
		if strings.TrimSpace(line.AccountCode) == "" {
			return fmt.Errorf("%w: line %d is missing an account code", apperrors.ErrValidation, i+1)
		}
		if line.Debit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative debit amount %s", apperrors.ErrValidation, i+1, line.Debit)
		}
		if line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative credit amount %s", apperrors.ErrValidation, i+1, line.Credit)
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d carries both a debit and a credit", apperrors.ErrValidation, i+1)
		}
	}
	return nil
}

// validateBalance checks the double-entry invariant: total debits and total
// credits must agree within the tolerance.
func (s *journalService) validateBalance(lines []dto.CreateJournalLineRequest) (decimal.Decimal, decimal.Decimal, error) {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, line := range lines {
		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}
	if totalDebits.Sub(totalCredits).Abs().GreaterThan(balanceTolerance) {
		return totalDebits, totalCredits, fmt.Errorf("%w: total debits %s, total credits %s",
			apperrors.ErrUnbalanced, totalDebits, totalCredits)
	}
	return totalDebits, totalCredits, nil
}

// CreateEntry validates a journal entry and persists it as a draft.
// All checks precede the store write; a rejected entry leaves no partial state.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.ReferenceNumber) == "" {
		return nil, fmt.Errorf("%w: reference number is required", apperrors.ErrValidation)
	}
	if err := s.validateLines(req.Lines); err != nil {
		return nil, err
	}
	totalDebits, totalCredits, err := s.validateBalance(req.Lines)
	if err != nil {
		s.LogDebug(ctx, "Unbalanced journal entry rejected",
			slog.String("total_debits", totalDebits.String()),
			slog.String("total_credits", totalCredits.String()))
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			AccountCode: strings.TrimSpace(lineReq.AccountCode),
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			Narration:   lineReq.Narration,
		}
	}

	entry := domain.JournalEntry{
		EntryID:         entryID,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		EntryDate:       req.EntryDate,
		IsPosted:        false,
		CreatedAt:       now,
		Lines:           lines,
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.String("entry_id", entryID),
		slog.String("total_debits", totalDebits.String()),
		slog.Int("line_count", len(lines)))
	return &entry, nil
}

// GetEntryByID retrieves a specific journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry by ID", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

func (s *journalService) ListPostedEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListPostedEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list posted journal entries")
		return nil, fmt.Errorf("failed to list posted journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

func (s *journalService) ListEntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.JournalEntry, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	entries, err := s.journalRepo.ListEntriesByDateRange(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries by date range")
		return nil, fmt.Errorf("failed to list journal entries by date range: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

// UpdateEntry edits a draft entry. Only the description is mutable; the lines
// were validated at creation time and stay fixed, so no re-validation happens here.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry for update", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.IsPosted {
		s.LogDebug(ctx, "Update rejected for posted journal entry", slog.String("entry_id", entryID))
		return nil, apperrors.ErrEntryPosted
	}

	if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
		s.LogDebug(ctx, "No fields provided for journal entry update", slog.String("entry_id", entryID))
		return entry, nil
	}
	entry.Description = *req.Description

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry updated successfully", slog.String("entry_id", entryID))
	return entry, nil
}

// PostEntry transitions a draft entry to posted. The repository performs the
// already-posted check and the flip atomically, so a second call observes the
// posted state and reports false rather than an error.
func (s *journalService) PostEntry(ctx context.Context, entryID string) (bool, error) {
	posted, err := s.journalRepo.MarkEntryPosted(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to post journal entry", slog.String("entry_id", entryID))
		return false, err
	}
	if posted {
		s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entryID))
	} else {
		s.LogDebug(ctx, "Post skipped: entry unknown or already posted", slog.String("entry_id", entryID))
	}
	return posted, nil
}

// DeleteEntry removes a draft entry. Posted entries are a permanent record and
// can never be deleted.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		s.LogError(ctx, err, "Failed to find journal entry for deletion", slog.String("entry_id", entryID))
		return false, err
	}

	if entry.IsPosted {
		s.LogDebug(ctx, "Delete rejected for posted journal entry", slog.String("entry_id", entryID))
		return false, apperrors.ErrEntryPosted
	}

	deleted, err := s.journalRepo.DeleteEntry(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		return false, err
	}
	if deleted {
		s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	}
	return deleted, nil
}
