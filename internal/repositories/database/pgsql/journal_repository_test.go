package pgsql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishabhDevDogra/Ledger-X/internal/core/domain"
	"github.com/RishabhDevDogra/Ledger-X/internal/models"
)

func TestToModelLine_BlankAccountIDBecomesNull(t *testing.T) {
	entryID := uuid.New().String()
	line := domain.JournalLine{
		LineID:      uuid.New().String(),
		EntryID:     entryID,
		AccountCode: "1000",
		Debit:       decimal.RequireFromString("125.50"),
		Credit:      decimal.Zero,
		Narration:   "Cash received",
	}

	m := toModelLine(entryID, 3, line)

	assert.Nil(t, m.AccountID)
	assert.Equal(t, line.LineID, m.LineID)
	assert.Equal(t, entryID, m.EntryID)
	assert.Equal(t, "1000", m.AccountCode)
	assert.Equal(t, 3, m.LineOrder)
	assert.True(t, m.Debit.Equal(line.Debit))
}

func TestToModelLine_AccountIDIsKept(t *testing.T) {
	accountID := uuid.New().String()
	line := domain.JournalLine{
		LineID:      uuid.New().String(),
		AccountID:   accountID,
		AccountCode: "4000",
		Debit:       decimal.Zero,
		Credit:      decimal.RequireFromString("125.50"),
	}

	m := toModelLine(uuid.New().String(), 0, line)

	require.NotNil(t, m.AccountID)
	assert.Equal(t, accountID, *m.AccountID)
}

func TestToDomainLine_NullAccountIDBecomesBlank(t *testing.T) {
	m := models.JournalLine{
		LineID:      uuid.New().String(),
		EntryID:     uuid.New().String(),
		AccountID:   nil,
		AccountCode: "2000",
		Debit:       decimal.Zero,
		Credit:      decimal.RequireFromString("75.00"),
		Narration:   "Accrued liability",
	}

	l := toDomainLine(m)

	assert.Equal(t, "", l.AccountID)
	assert.Equal(t, m.LineID, l.LineID)
	assert.Equal(t, m.EntryID, l.EntryID)
	assert.Equal(t, "2000", l.AccountCode)
	assert.Equal(t, "Accrued liability", l.Narration)
	assert.True(t, l.Credit.Equal(m.Credit))
}

func TestLineRoundTrip_WithAndWithoutAccountID(t *testing.T) {
	entryID := uuid.New().String()
	for _, accountID := range []string{"", uuid.New().String()} {
		line := domain.JournalLine{
			LineID:      uuid.New().String(),
			EntryID:     entryID,
			AccountID:   accountID,
			AccountCode: "5000",
			Debit:       decimal.RequireFromString("10.00"),
			Credit:      decimal.Zero,
			Narration:   "Office supplies",
		}

		got := toDomainLine(toModelLine(entryID, 1, line))

		assert.Equal(t, line.AccountID, got.AccountID)
		assert.Equal(t, line.AccountCode, got.AccountCode)
		assert.True(t, got.Debit.Equal(line.Debit))
	}
}
