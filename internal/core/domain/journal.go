package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single, balanced financial event composed of multiple lines.
// A draft entry (IsPosted=false) may have its description edited and may be deleted;
// once posted it is a permanent record and can never be mutated or deleted.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`         // Primary Key (UUID)
	Description     string        `json:"description"`     // Not Null
	ReferenceNumber string        `json:"referenceNumber"` // Not Null
	EntryDate       time.Time     `json:"entryDate"`       // Date the event occurred
	IsPosted        bool          `json:"isPosted"`        // Default: false (draft)
	CreatedAt       time.Time     `json:"createdAt"`
	Lines           []JournalLine `json:"lines"` // Ordered, length >= 2
}

// JournalLine represents a single line item within a JournalEntry, affecting one account.
// A line carries a nonzero debit or a nonzero credit, never both.
type JournalLine struct {
	LineID      string          `json:"lineID"`      // Primary Key (UUID)
	EntryID     string          `json:"entryID"`     // FK -> JournalEntry.entryID
	AccountID   string          `json:"accountID"`   // Reference, not FK-enforced
	AccountCode string          `json:"accountCode"` // Matches Account.code conceptually
	Debit       decimal.Decimal `json:"debit"`       // >= 0
	Credit      decimal.Decimal `json:"credit"`      // >= 0
	Narration   string          `json:"narration"`   // Free text
}
