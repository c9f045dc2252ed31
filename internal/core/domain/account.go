package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the five ledger types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a ledger account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID   string          `json:"accountID"`   // Primary Key (UUID)
	Code        string          `json:"code"`        // Unique across all accounts (Not Null)
	Name        string          `json:"name"`        // User-defined name (Not Null)
	AccountType AccountType     `json:"accountType"` // ASSET, LIABILITY, etc.
	Balance     decimal.Decimal `json:"balance"`     // Opening balance, fixed-point decimal
	IsActive    bool            `json:"isActive"`    // Soft delete or status flag
	CreatedAt   time.Time       `json:"createdAt"`
}
