package dto

import (
	"time"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one line of a journal entry creation request.
type CreateJournalLineRequest struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Narration   string          `json:"narration"`
}

// CreateJournalEntryRequest defines the data needed to create a new journal entry.
// The double-entry checks (line count, sign rules, balance tolerance) live in the
// journal service so they are enforced for every caller, not just HTTP.
type CreateJournalEntryRequest struct {
	Description     string                     `json:"description" binding:"required"`
	ReferenceNumber string                     `json:"referenceNumber" binding:"required"`
	EntryDate       time.Time                  `json:"entryDate" binding:"required"`
	Lines           []CreateJournalLineRequest `json:"lines" binding:"required"`
}

// UpdateJournalEntryRequest defines the data allowed for updating a draft entry.
// Only the description is editable; lines are fixed at creation time.
type UpdateJournalEntryRequest struct {
	Description *string `json:"description"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Narration   string          `json:"narration"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	Description     string                `json:"description"`
	ReferenceNumber string                `json:"referenceNumber"`
	EntryDate       time.Time             `json:"entryDate"`
	IsPosted        bool                  `json:"isPosted"`
	CreatedAt       time.Time             `json:"createdAt"`
	Lines           []JournalLineResponse `json:"lines"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Narration:   l.Narration,
		}
	}
	return JournalEntryResponse{
		EntryID:         e.EntryID,
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		EntryDate:       e.EntryDate,
		IsPosted:        e.IsPosted,
		CreatedAt:       e.CreatedAt,
		Lines:           lines,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ListJournalEntriesResponse wraps the list of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// DateRangeParams defines the query parameters for the by-date-range listing.
type DateRangeParams struct {
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
