package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one row of a bank-statement style ledger: the
// transaction, its classified effect, and the balance after it.
type LedgerLine struct {
	Transaction Transaction
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// LedgerTotals aggregates a ledger run.
type LedgerTotals struct {
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Closing decimal.Decimal
}

// SortDate parses a YYYY-MM-DD ledger date for ordering. Anything
// unparseable sorts to the epoch so a single bad row lands at the top
// of the statement instead of failing the whole ledger.
func SortDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// sortForLedger orders transactions by date ascending. Same-date rows
// fall back to creation time ascending, and the sort is stable so equal
// keys keep their input order.
func sortForLedger(txns []Transaction) []Transaction {
	out := make([]Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := SortDate(out[i].Date), SortDate(out[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// RunLedger folds a transaction history into running-balance lines.
// Transactions are sorted chronologically first; the fold is
//
//	balance[i] = balance[i-1] - debit[i] + credit[i]
//
// starting from opening. It holds no state and recomputes from scratch
// on every call, so the result for a given input never drifts. An empty
// history yields no lines and totals whose closing balance is opening.
func RunLedger(opening decimal.Decimal, txns []Transaction, p Perspective) ([]LedgerLine, LedgerTotals) {
	ordered := sortForLedger(txns)

	lines := make([]LedgerLine, 0, len(ordered))
	balance := opening
	totals := LedgerTotals{Debit: decimal.Zero, Credit: decimal.Zero, Closing: opening}

	for _, t := range ordered {
		eff := Classify(t, p)
		balance = balance.Sub(eff.Debit).Add(eff.Credit)
		totals.Debit = totals.Debit.Add(eff.Debit)
		totals.Credit = totals.Credit.Add(eff.Credit)
		lines = append(lines, LedgerLine{
			Transaction: t,
			Debit:       eff.Debit,
			Credit:      eff.Credit,
			Balance:     balance,
		})
	}

	totals.Closing = balance
	return lines, totals
}

// LedgerTotalsOnly computes just the aggregate sums and closing balance,
// without materializing per-line output. Order does not matter for the
// totals, so no sort is performed.
func LedgerTotalsOnly(opening decimal.Decimal, txns []Transaction, p Perspective) LedgerTotals {
	totals := LedgerTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, t := range txns {
		eff := Classify(t, p)
		totals.Debit = totals.Debit.Add(eff.Debit)
		totals.Credit = totals.Credit.Add(eff.Credit)
	}
	totals.Closing = opening.Sub(totals.Debit).Add(totals.Credit)
	return totals
}
