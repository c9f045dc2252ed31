package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database row shape for a journal entry header.
type JournalEntry struct {
	EntryID         string    `db:"entry_id"`
	Description     string    `db:"description"`
	ReferenceNumber string    `db:"reference_number"`
	EntryDate       time.Time `db:"entry_date"`
	IsPosted        bool      `db:"is_posted"`
	CreatedAt       time.Time `db:"created_at"`
}

// JournalLine is the database row shape for a journal entry line. AccountID
// is a pointer because the column is nullable: lines carry an account code,
// and the account id is an optional cross-reference.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   *string         `db:"account_id"`
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Narration   string          `db:"narration"`
	LineOrder   int             `db:"line_order"`
}
