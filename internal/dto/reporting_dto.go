package dto

import (
	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is a single row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the full trial balance report.
type TrialBalanceResponse struct {
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"totalDebits"`
	TotalCredits decimal.Decimal           `json:"totalCredits"`
	IsBalanced   bool                      `json:"isBalanced"`
}

// TotalResponse carries a single aggregate figure for the totals endpoints.
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// ToTrialBalanceResponse converts a domain.TrialBalanceReport to its DTO.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	return TrialBalanceResponse{
		Rows:         rows,
		TotalDebits:  r.TotalDebits,
		TotalCredits: r.TotalCredits,
		IsBalanced:   r.IsBalanced,
	}
}
