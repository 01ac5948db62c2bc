package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/adapter/repo"
	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func setupService(t *testing.T) (*service.LedgerService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Party{},
		&domain.Transaction{},
		&domain.Attachment{},
	))

	svc := service.NewLedgerService(
		db,
		repo.NewPartyRepo(db),
		repo.NewTransactionRepo(db),
		repo.NewAttachmentRepo(db),
	)
	return svc, db
}

func createParty(t *testing.T, svc *service.LedgerService, opening decimal.Decimal) *domain.Party {
	t.Helper()
	party, err := svc.CreateParty(context.Background(), "proj-1", &domain.Party{
		Name:           "Shree Cement Traders",
		Type:           domain.PartySupplier,
		OpeningBalance: opening,
	})
	require.NoError(t, err)
	return party
}

func TestPartyStatement_PurchaseThenPayment(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, dec("-10000"))

	_, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        party.ID,
		Type:           domain.EntryPurchase,
		PurchaseAmount: dec("20000"),
	})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:    "2024-01-10",
		PartyID: party.ID,
		Type:    domain.EntryPayment,
		Credit:  dec("15000"),
	})
	require.NoError(t, err)

	view, err := svc.PartyLedger(ctx, party.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].Balance.Equal(dec("-30000")))
	assert.True(t, view.Lines[1].Balance.Equal(dec("-15000")))

	stored, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentBalance.Equal(dec("-15000")))
}

func TestPaymentWithoutPurchase_PartyOwesBack(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, decimal.Zero)

	_, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:    "2024-02-01",
		PartyID: party.ID,
		Type:    domain.EntryPayment,
		Credit:  dec("5000"),
	})
	require.NoError(t, err)

	stored, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentBalance.Equal(dec("5000")))
}

func TestResync_Idempotent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, dec("1000"))

	_, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        party.ID,
		PurchaseAmount: dec("300"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResyncPartyBalance(ctx, party.ID))
	first, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ResyncPartyBalance(ctx, party.ID))
	second, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)

	assert.True(t, first.CurrentBalance.Equal(second.CurrentBalance))
	assert.True(t, first.CurrentBalance.Equal(dec("700")))
}

func TestResync_EmptyHistoryKeepsOpeningBalance(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, dec("42000"))

	require.NoError(t, svc.ResyncPartyBalance(ctx, party.ID))

	stored, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentBalance.Equal(dec("42000")))
}

func TestPartyLedger_ClosingMatchesStoredBalance(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, dec("-2500"))

	amounts := []struct {
		date     string
		purchase string
		credit   string
	}{
		{"2024-01-05", "12000", "0"},
		{"2024-01-08", "0", "4000"},
		{"2024-01-08", "999.5", "0"},
		{"2024-02-01", "0", "8000.25"},
	}
	for _, a := range amounts {
		_, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
			Date:           a.date,
			PartyID:        party.ID,
			PurchaseAmount: dec(a.purchase),
			Credit:         dec(a.credit),
		})
		require.NoError(t, err)
	}

	view, err := svc.PartyLedger(ctx, party.ID)
	require.NoError(t, err)

	stored, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, view.Totals.Closing.Equal(stored.CurrentBalance),
		"ledger closing %s != stored balance %s", view.Totals.Closing, stored.CurrentBalance)
}

func TestDeleteTransaction_RestoresBalance(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, dec("100"))

	txn, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        party.ID,
		PurchaseAmount: dec("5000"),
	})
	require.NoError(t, err)

	stored, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	require.True(t, stored.CurrentBalance.Equal(dec("-4900")))

	require.NoError(t, svc.DeleteTransaction(ctx, txn.ID))

	stored, err = svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentBalance.Equal(dec("100")),
		"deleting the purchase must restore the pre-purchase balance")
}

func TestDeleteParty_RejectedWhileHistoryExists(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, decimal.Zero)

	txn, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        party.ID,
		PurchaseAmount: dec("100"),
	})
	require.NoError(t, err)

	err = svc.DeleteParty(ctx, party.ID)
	assert.ErrorIs(t, err, domain.ErrPartyHasTransactions)

	// Once the history is gone the delete goes through.
	require.NoError(t, svc.DeleteTransaction(ctx, txn.ID))
	assert.NoError(t, svc.DeleteParty(ctx, party.ID))
}

func TestCreateTransaction_UnknownPartyRollsBack(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        "no-such-party",
		PurchaseAmount: dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)

	// The insert must not survive the failed sync.
	txns, err := svc.ListTransactions(ctx, "proj-1")
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestUpdateTransaction_MovingPartyResyncsBoth(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	first := createParty(t, svc, decimal.Zero)
	second := createParty(t, svc, decimal.Zero)

	txn, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        first.ID,
		PurchaseAmount: dec("1000"),
	})
	require.NoError(t, err)

	_, err = svc.UpdateTransaction(ctx, txn.ID, service.TransactionUpdate{
		Date:           "2024-01-01",
		PartyID:        second.ID,
		PurchaseAmount: domain.NewAmount(dec("1000")),
	})
	require.NoError(t, err)

	one, err := svc.GetParty(ctx, first.ID)
	require.NoError(t, err)
	two, err := svc.GetParty(ctx, second.ID)
	require.NoError(t, err)

	assert.True(t, one.CurrentBalance.IsZero(), "old party keeps balance %s", one.CurrentBalance)
	assert.True(t, two.CurrentBalance.Equal(dec("-1000")))
}

func TestUpdateParty_OpeningBalanceEditResyncs(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	party := createParty(t, svc, decimal.Zero)

	_, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:           "2024-01-01",
		PartyID:        party.ID,
		PurchaseAmount: dec("500"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateParty(ctx, party.ID, service.PartyUpdate{
		Name:           party.Name,
		Type:           party.Type,
		OpeningBalance: dec("2000"),
	})
	require.NoError(t, err)
	assert.True(t, updated.OpeningBalance.Equal(dec("2000")))

	stored, err := svc.GetParty(ctx, party.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentBalance.Equal(dec("1500")))
}

func TestCompanyLedger_PurchaseFilter(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	entries := []domain.Transaction{
		{Date: "2024-01-01", Type: domain.EntryPurchase, PurchaseAmount: dec("1000")},
		{Date: "2024-01-05", Type: domain.EntryPayment, Credit: dec("500")},
		{Date: "2024-01-10", Type: domain.EntryPurchase, PurchaseAmount: dec("2000")},
	}
	for i := range entries {
		_, err := svc.CreateTransaction(ctx, "proj-1", &entries[i])
		require.NoError(t, err)
	}

	view, err := svc.CompanyLedger(ctx, "proj-1", service.CompanyFilter{Type: "purchases"})
	require.NoError(t, err)

	require.Len(t, view.Lines, 2, "the payment must be filtered out entirely")
	assert.True(t, view.Lines[0].Balance.Equal(dec("-1000")))
	assert.True(t, view.Lines[1].Balance.Equal(dec("-3000")))
	assert.True(t, view.Net.Equal(dec("-3000")))
}

func TestCompanyLedger_DateRangeAndIncome(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	entries := []domain.Transaction{
		{Date: "2023-12-31", Type: domain.EntryPurchase, PurchaseAmount: dec("9999")},
		{Date: "2024-01-02", Debit: dec("100000")}, // income
		{Date: "2024-01-03", Type: domain.EntryPayment, Credit: dec("25000")},
	}
	for i := range entries {
		_, err := svc.CreateTransaction(ctx, "proj-1", &entries[i])
		require.NoError(t, err)
	}

	view, err := svc.CompanyLedger(ctx, "proj-1", service.CompanyFilter{From: "2024-01-01"})
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].Balance.Equal(dec("100000")))
	assert.True(t, view.Lines[1].Balance.Equal(dec("75000")))
}

func TestAttachments_FlagFollowsImage(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	txn, err := svc.CreateTransaction(ctx, "proj-1", &domain.Transaction{
		Date:   "2024-01-01",
		Credit: dec("100"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetAttachment(ctx, txn.ID, "data:image/jpeg;base64,abc"))

	data, err := svc.GetAttachment(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,abc", data)

	txns, err := svc.ListTransactions(ctx, "proj-1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].HasAttachment)

	require.NoError(t, svc.DeleteAttachment(ctx, txn.ID))
	txns, err = svc.ListTransactions(ctx, "proj-1")
	require.NoError(t, err)
	assert.False(t, txns[0].HasAttachment)
}
