package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PartyType classifies a counter-party.
type PartyType string

const (
	PartySupplier   PartyType = "supplier"
	PartyContractor PartyType = "contractor"
	PartyLabor      PartyType = "labor"
	PartyOther      PartyType = "other"
)

// IsValid reports whether the party type is one of the known values.
func (p PartyType) IsValid() bool {
	switch p {
	case PartySupplier, PartyContractor, PartyLabor, PartyOther:
		return true
	}
	return false
}

// EntryType marks which entry form produced a transaction.
// Generic income/expense entries carry no type at all.
type EntryType string

const (
	EntryPurchase EntryType = "purchase"
	EntryPayment  EntryType = "payment"
)

// Perspective selects which sign convention a ledger view uses.
type Perspective int

const (
	// PartyPerspective tracks what is owed to a single party:
	// purchases increase the debt, payments reduce it, income is ignored.
	PartyPerspective Perspective = iota

	// CompanyPerspective tracks project cash flow:
	// purchases and payments are money out, income is money in.
	CompanyPerspective
)

// Amount is a decimal that tolerates sloppy JSON input. Numbers,
// numeric strings, null and garbage all decode without error; anything
// unparseable becomes zero. Ledger arithmetic must never fail on a
// malformed amount.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON decodes a JSON number or numeric string, coercing
// anything else to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	// Strings first: "1500", "abc", "".
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = d
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON renders the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
