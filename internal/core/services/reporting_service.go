package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	portsrepo "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/repositories"
	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface.
// Reports are recomputed on every call; at this corpus size an
// O(accounts + entries*lines) scan is cheaper than maintaining running totals.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalEntryReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalEntryReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

type debitCredit struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// TrialBalance aggregates every posted line by account code. Every known account
// gets a row; lines referencing unknown codes still contribute, with an empty
// account name rather than being dropped.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for trial balance")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	entries, err := s.journalRepo.ListPostedEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load posted entries for trial balance")
		return nil, fmt.Errorf("failed to load posted entries: %w", err)
	}

	names := make(map[string]string, len(accounts))
	totals := make(map[string]debitCredit, len(accounts))
	order := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		names[acc.Code] = acc.Name
		totals[acc.Code] = debitCredit{debit: decimal.Zero, credit: decimal.Zero}
		order = append(order, acc.Code)
	}

	for _, entry := range entries {
		for _, line := range entry.Lines {
			acc, known := totals[line.AccountCode]
			if !known {
				order = append(order, line.AccountCode)
			}
			acc.debit = acc.debit.Add(line.Debit)
			acc.credit = acc.credit.Add(line.Credit)
			totals[line.AccountCode] = acc
		}
	}

	sort.Strings(order)

	report := &domain.TrialBalanceReport{
		Rows:         make([]domain.TrialBalanceRow, 0, len(order)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, code := range order {
		dc := totals[code]
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountCode: code,
			AccountName: names[code],
			Debit:       dc.debit,
			Credit:      dc.credit,
		})
		report.TotalDebits = report.TotalDebits.Add(dc.debit)
		report.TotalCredits = report.TotalCredits.Add(dc.credit)
	}
	report.IsBalanced = report.TotalDebits.Sub(report.TotalCredits).Abs().LessThanOrEqual(balanceTolerance)

	s.LogInfo(ctx, "Trial balance generated",
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("is_balanced", report.IsBalanced))
	return report, nil
}

// TotalDebits sums the debit side of every posted line.
func (s *reportingService) TotalDebits(ctx context.Context) (decimal.Decimal, error) {
	return s.sumPostedLines(ctx, func(line domain.JournalLine) decimal.Decimal {
		return line.Debit
	})
}

// TotalCredits sums the credit side of every posted line.
func (s *reportingService) TotalCredits(ctx context.Context) (decimal.Decimal, error) {
	return s.sumPostedLines(ctx, func(line domain.JournalLine) decimal.Decimal {
		return line.Credit
	})
}

func (s *reportingService) sumPostedLines(ctx context.Context, amount func(domain.JournalLine) decimal.Decimal) (decimal.Decimal, error) {
	entries, err := s.journalRepo.ListPostedEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load posted entries for totals")
		return decimal.Zero, fmt.Errorf("failed to load posted entries: %w", err)
	}
	total := decimal.Zero
	for _, entry := range entries {
		for _, line := range entry.Lines {
			total = total.Add(amount(line))
		}
	}
	return total, nil
}
