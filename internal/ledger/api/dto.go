package api

import (
	"time"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

// transactionReq is the JSON body for creating or updating an entry.
// The three amount fields use domain.Amount: the entry forms send one
// of them, and anything malformed is coerced to zero rather than
// rejected.
type transactionReq struct {
	Date           string        `json:"date" binding:"required"`
	VoucherNo      string        `json:"voucherNo"`
	PartyID        string        `json:"partyId"`
	PartyName      string        `json:"partyName"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	SubCategory    string        `json:"subCategory"`
	Type           string        `json:"type"`
	PurchaseAmount domain.Amount `json:"purchaseAmount"`
	Credit         domain.Amount `json:"credit"`
	Debit          domain.Amount `json:"debit"`
	PaymentMode    string        `json:"paymentMode"`
	Reference      string        `json:"reference"`
	Notes          string        `json:"notes"`
	IsPaid         bool          `json:"isPaid"`
}

type transactionResp struct {
	ID             string        `json:"id"`
	ProjectID      string        `json:"projectId"`
	Date           string        `json:"date"`
	VoucherNo      string        `json:"voucherNo"`
	PartyID        string        `json:"partyId"`
	PartyName      string        `json:"partyName"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	SubCategory    string        `json:"subCategory"`
	Type           string        `json:"type"`
	PurchaseAmount domain.Amount `json:"purchaseAmount"`
	Credit         domain.Amount `json:"credit"`
	Debit          domain.Amount `json:"debit"`
	PaymentMode    string        `json:"paymentMode"`
	Reference      string        `json:"reference"`
	Notes          string        `json:"notes"`
	IsPaid         bool          `json:"isPaid"`
	HasAttachment  bool          `json:"hasAttachment"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func toTransactionResp(t domain.Transaction) transactionResp {
	return transactionResp{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Date:           t.Date,
		VoucherNo:      t.VoucherNo,
		PartyID:        t.PartyID,
		PartyName:      t.PartyName,
		Description:    t.Description,
		Category:       t.Category,
		SubCategory:    t.SubCategory,
		Type:           string(t.Type),
		PurchaseAmount: domain.NewAmount(t.PurchaseAmount),
		Credit:         domain.NewAmount(t.Credit),
		Debit:          domain.NewAmount(t.Debit),
		PaymentMode:    t.PaymentMode,
		Reference:      t.Reference,
		Notes:          t.Notes,
		IsPaid:         t.IsPaid,
		HasAttachment:  t.HasAttachment,
		CreatedAt:      t.CreatedAt,
	}
}

type partyReq struct {
	Name           string        `json:"name" binding:"required"`
	Type           string        `json:"type"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	OpeningBalance domain.Amount `json:"openingBalance"`
}

type partyResp struct {
	ID             string        `json:"id"`
	ProjectID      string        `json:"projectId"`
	Name           string        `json:"name"`
	Type           string        `json:"type"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	OpeningBalance domain.Amount `json:"openingBalance"`
	CurrentBalance domain.Amount `json:"currentBalance"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func toPartyResp(p domain.Party) partyResp {
	return partyResp{
		ID:             p.ID,
		ProjectID:      p.ProjectID,
		Name:           p.Name,
		Type:           string(p.Type),
		Phone:          p.Phone,
		Address:        p.Address,
		OpeningBalance: domain.NewAmount(p.OpeningBalance),
		CurrentBalance: domain.NewAmount(p.CurrentBalance),
		CreatedAt:      p.CreatedAt,
	}
}

// ledgerLineResp is one statement row.
type ledgerLineResp struct {
	Transaction transactionResp `json:"transaction"`
	Debit       domain.Amount   `json:"debit"`
	Credit      domain.Amount   `json:"credit"`
	Balance     domain.Amount   `json:"balance"`
}

type partyLedgerResp struct {
	Party          partyResp        `json:"party"`
	OpeningBalance domain.Amount    `json:"openingBalance"`
	Entries        []ledgerLineResp `json:"entries"`
	TotalDebit     domain.Amount    `json:"totalDebit"`
	TotalCredit    domain.Amount    `json:"totalCredit"`
	ClosingBalance domain.Amount    `json:"closingBalance"`
}

type companyLedgerResp struct {
	Entries     []ledgerLineResp `json:"entries"`
	TotalDebit  domain.Amount    `json:"totalDebit"`
	TotalCredit domain.Amount    `json:"totalCredit"`
	NetBalance  domain.Amount    `json:"netBalance"`
}

func toLedgerLines(lines []domain.LedgerLine) []ledgerLineResp {
	out := make([]ledgerLineResp, len(lines))
	for i, l := range lines {
		out[i] = ledgerLineResp{
			Transaction: toTransactionResp(l.Transaction),
			Debit:       domain.NewAmount(l.Debit),
			Credit:      domain.NewAmount(l.Credit),
			Balance:     domain.NewAmount(l.Balance),
		}
	}
	return out
}

type attachmentReq struct {
	ImageData string `json:"imageData" binding:"required"`
}
