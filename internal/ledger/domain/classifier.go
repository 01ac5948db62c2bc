package domain

import "github.com/shopspring/decimal"

// Effect is the classified monetary effect of one transaction under a
// chosen perspective: two non-negative magnitudes. Debit moves the
// balance down, Credit moves it up:
//
//	after = before - Debit + Credit
type Effect struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// PartyEffect classifies a transaction for a party's own balance.
// A purchase is money the project now owes the party (debit); a payment
// to the party reduces that debt (credit). The income field plays no
// role in a party balance.
func PartyEffect(t Transaction) Effect {
	return Effect{
		Debit:  t.PurchaseAmount,
		Credit: t.Credit,
	}
}

// CompanyEffect classifies a transaction for the project cash-flow
// ledger. Purchases and payments are both money going out; whichever
// of the two is recorded supplies the debit. Income is money coming in.
func CompanyEffect(t Transaction) Effect {
	out := t.PurchaseAmount
	if out.IsZero() {
		out = t.Credit
	}
	return Effect{
		Debit:  out,
		Credit: t.Debit,
	}
}

// Classify applies the perspective's mapping to one transaction.
func Classify(t Transaction, p Perspective) Effect {
	if p == CompanyPerspective {
		return CompanyEffect(t)
	}
	return PartyEffect(t)
}
