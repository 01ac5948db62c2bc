package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

func TestRunLedger_PartyStatement(t *testing.T) {
	// Opening -10000 (project owes the party), purchase 20000, payment
	// 15000: running balances -30000 then -15000.
	opening := dec("-10000")
	txns := []domain.Transaction{
		{ID: "t2", Date: "2024-01-10", Credit: dec("15000")},
		{ID: "t1", Date: "2024-01-01", PurchaseAmount: dec("20000")},
	}

	lines, totals := domain.RunLedger(opening, txns, domain.PartyPerspective)

	require.Len(t, lines, 2)
	assert.Equal(t, "t1", lines[0].Transaction.ID)
	assert.True(t, lines[0].Balance.Equal(dec("-30000")))
	assert.Equal(t, "t2", lines[1].Transaction.ID)
	assert.True(t, lines[1].Balance.Equal(dec("-15000")))

	assert.True(t, totals.Debit.Equal(dec("20000")))
	assert.True(t, totals.Credit.Equal(dec("15000")))
	assert.True(t, totals.Closing.Equal(dec("-15000")))
}

func TestRunLedger_FoldAgreesWithDirectSum(t *testing.T) {
	// Every prefix of the fold must match an independent summation.
	opening := dec("1234.5")
	txns := []domain.Transaction{
		{ID: "a", Date: "2024-01-01", PurchaseAmount: dec("100")},
		{ID: "b", Date: "2024-01-02", Credit: dec("40.25")},
		{ID: "c", Date: "2024-01-03", Debit: dec("500")},
		{ID: "d", Date: "2024-01-04", PurchaseAmount: dec("7.77")},
		{ID: "e", Date: "2024-01-05", Credit: dec("0.01")},
	}

	for _, p := range []domain.Perspective{domain.PartyPerspective, domain.CompanyPerspective} {
		lines, _ := domain.RunLedger(opening, txns, p)

		balance := opening
		for i, line := range lines {
			eff := domain.Classify(line.Transaction, p)
			balance = balance.Sub(eff.Debit).Add(eff.Credit)
			assert.True(t, line.Balance.Equal(balance), "prefix %d diverged", i)
		}
	}
}

func TestRunLedger_EmptyHistory(t *testing.T) {
	opening := dec("5000")

	lines, totals := domain.RunLedger(opening, nil, domain.PartyPerspective)

	assert.Empty(t, lines)
	assert.True(t, totals.Debit.IsZero())
	assert.True(t, totals.Credit.IsZero())
	assert.True(t, totals.Closing.Equal(opening))
}

func TestRunLedger_SortsByDateThenCreatedAt(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{ID: "late-created", Date: "2024-02-01", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "newest-date", Date: "2024-02-05", CreatedAt: base},
		{ID: "early-created", Date: "2024-02-01", CreatedAt: base},
	}

	lines, _ := domain.RunLedger(decimal.Zero, txns, domain.PartyPerspective)

	require.Len(t, lines, 3)
	assert.Equal(t, "early-created", lines[0].Transaction.ID)
	assert.Equal(t, "late-created", lines[1].Transaction.ID)
	assert.Equal(t, "newest-date", lines[2].Transaction.ID)
}

func TestRunLedger_BadDateSortsFirst(t *testing.T) {
	txns := []domain.Transaction{
		{ID: "good", Date: "2024-01-15"},
		{ID: "bad", Date: "not-a-date"},
	}

	lines, _ := domain.RunLedger(decimal.Zero, txns, domain.PartyPerspective)

	require.Len(t, lines, 2)
	assert.Equal(t, "bad", lines[0].Transaction.ID)
}

func TestRunLedger_DoesNotMutateInput(t *testing.T) {
	txns := []domain.Transaction{
		{ID: "b", Date: "2024-01-02"},
		{ID: "a", Date: "2024-01-01"},
	}

	domain.RunLedger(decimal.Zero, txns, domain.PartyPerspective)

	assert.Equal(t, "b", txns[0].ID)
	assert.Equal(t, "a", txns[1].ID)
}

func TestLedgerTotalsOnly_MatchesRunLedger(t *testing.T) {
	opening := dec("-10000")
	txns := []domain.Transaction{
		{ID: "t1", Date: "2024-01-01", PurchaseAmount: dec("20000")},
		{ID: "t2", Date: "2024-01-10", Credit: dec("15000")},
	}

	_, full := domain.RunLedger(opening, txns, domain.PartyPerspective)
	only := domain.LedgerTotalsOnly(opening, txns, domain.PartyPerspective)

	assert.True(t, only.Debit.Equal(full.Debit))
	assert.True(t, only.Credit.Equal(full.Credit))
	assert.True(t, only.Closing.Equal(full.Closing))
}

func TestSortDate(t *testing.T) {
	assert.True(t, domain.SortDate("2024-01-15").Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, domain.SortDate("garbage").Equal(time.Unix(0, 0)))
	assert.True(t, domain.SortDate("").Equal(time.Unix(0, 0)))
}
