package services

import (
	"context"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade defines the derived report operations. All reports are
// recomputed on every call over posted entries only.
type ReportingSvcFacade interface {
	// TrialBalance aggregates posted lines by account code.
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)

	// TotalDebits sums the debit side of every posted line.
	TotalDebits(ctx context.Context) (decimal.Decimal, error)

	// TotalCredits sums the credit side of every posted line.
	TotalCredits(ctx context.Context) (decimal.Decimal, error)
}
