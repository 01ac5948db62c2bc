package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPartyEffect_Purchase(t *testing.T) {
	txn := domain.Transaction{PurchaseAmount: dec("20000")}

	eff := domain.PartyEffect(txn)

	assert.True(t, eff.Debit.Equal(dec("20000")))
	assert.True(t, eff.Credit.IsZero())
}

func TestPartyEffect_Payment(t *testing.T) {
	txn := domain.Transaction{Credit: dec("15000")}

	eff := domain.PartyEffect(txn)

	assert.True(t, eff.Debit.IsZero())
	assert.True(t, eff.Credit.Equal(dec("15000")))
}

func TestPartyEffect_IgnoresIncome(t *testing.T) {
	// The debit (income) field never touches a party's own balance.
	txn := domain.Transaction{Debit: dec("50000")}

	eff := domain.PartyEffect(txn)

	assert.True(t, eff.Debit.IsZero())
	assert.True(t, eff.Credit.IsZero())
}

func TestCompanyEffect_PurchaseIsMoneyOut(t *testing.T) {
	txn := domain.Transaction{PurchaseAmount: dec("1000")}

	eff := domain.CompanyEffect(txn)

	assert.True(t, eff.Debit.Equal(dec("1000")))
	assert.True(t, eff.Credit.IsZero())
}

func TestCompanyEffect_PaymentIsMoneyOut(t *testing.T) {
	txn := domain.Transaction{Credit: dec("500")}

	eff := domain.CompanyEffect(txn)

	assert.True(t, eff.Debit.Equal(dec("500")))
	assert.True(t, eff.Credit.IsZero())
}

func TestCompanyEffect_IncomeIsMoneyIn(t *testing.T) {
	txn := domain.Transaction{Debit: dec("100000")}

	eff := domain.CompanyEffect(txn)

	assert.True(t, eff.Debit.IsZero())
	assert.True(t, eff.Credit.Equal(dec("100000")))
}

func TestCompanyEffect_PurchaseWinsOverCredit(t *testing.T) {
	// When both outflow fields are set, the purchase supplies the debit.
	txn := domain.Transaction{PurchaseAmount: dec("1000"), Credit: dec("400")}

	eff := domain.CompanyEffect(txn)

	assert.True(t, eff.Debit.Equal(dec("1000")))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want decimal.Decimal
	}{
		{"number", `1500.25`, dec("1500.25")},
		{"numeric string", `"2500"`, dec("2500")},
		{"garbage string", `"abc"`, decimal.Zero},
		{"empty string", `""`, decimal.Zero},
		{"null", `null`, decimal.Zero},
		{"negative", `-10000`, dec("-10000")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a domain.Amount
			err := json.Unmarshal([]byte(tc.in), &a)
			assert.NoError(t, err)
			assert.True(t, a.Decimal.Equal(tc.want), "got %s want %s", a.Decimal, tc.want)
		})
	}
}

func TestAmount_MalformedAmountInComputation(t *testing.T) {
	// A transaction posted with purchaseAmount "abc" must behave as zero
	// everywhere, never error.
	var body struct {
		PurchaseAmount domain.Amount `json:"purchaseAmount"`
	}
	err := json.Unmarshal([]byte(`{"purchaseAmount":"abc"}`), &body)
	assert.NoError(t, err)

	txn := domain.Transaction{PurchaseAmount: body.PurchaseAmount.Decimal}
	eff := domain.PartyEffect(txn)
	assert.True(t, eff.Debit.IsZero())
}
