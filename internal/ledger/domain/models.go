package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is a counter-party (supplier, contractor, labor crew) in a
// project's ledger. CurrentBalance is derived; it is rewritten by the
// balance sync after every mutation that could affect it and must never
// be authored directly. Sign convention: positive = the party owes the
// project, negative = the project owes the party.
type Party struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)"`
	ProjectID      string          `gorm:"type:varchar(36);not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Type           PartyType       `gorm:"type:varchar(16);not null;default:'supplier'"`
	Phone          string          `gorm:"type:varchar(20)"`
	Address        string          `gorm:"type:text"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Party) TableName() string {
	return "parties"
}

// Transaction is one recorded ledger event. Exactly one of the three
// amount fields is populated by each entry form: PurchaseAmount by a
// credit purchase, Credit by a payment/expense, Debit by income. The
// schema does not enforce that, so the classifier sums whatever is set.
// Date is kept as the raw YYYY-MM-DD string the client sent; sorting
// goes through SortDate so a bad date can never break a ledger.
type Transaction struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)"`
	ProjectID      string          `gorm:"type:varchar(36);not null;index"`
	Date           string          `gorm:"type:varchar(10);not null;index"`
	VoucherNo      string          `gorm:"type:varchar(32)"`
	PartyID        string          `gorm:"type:varchar(36);index"`
	PartyName      string          `gorm:"type:varchar(100)"`
	Description    string          `gorm:"type:text"`
	Category       string          `gorm:"type:varchar(64)"`
	SubCategory    string          `gorm:"type:varchar(64)"`
	Type           EntryType       `gorm:"type:varchar(16)"`
	PurchaseAmount decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Credit         decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Debit          decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	PaymentMode    string          `gorm:"type:varchar(32)"`
	Reference      string          `gorm:"type:varchar(100)"`
	Notes          string          `gorm:"type:text"`
	IsPaid         bool            `gorm:"not null;default:false"`
	HasAttachment  bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Transaction) TableName() string {
	return "transactions"
}

// Attachment stores a receipt image for a transaction. At most one per
// transaction; uploading again replaces the previous image.
type Attachment struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	TransactionID string `gorm:"type:varchar(36);not null;uniqueIndex"`
	ImageData     string `gorm:"type:text"`
	CreatedAt     time.Time
}

func (Attachment) TableName() string {
	return "attachments"
}
