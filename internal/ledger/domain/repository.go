package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartyRepository is the port for party persistence. Mutating methods
// take the caller's gorm session so a write and the balance resync it
// triggers commit or roll back together.
type PartyRepository interface {
	// FindByID reads through the given session so the balance sync can
	// see rows written earlier in the same transaction.
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Party, error)
	ListByProject(ctx context.Context, projectID string) ([]Party, error)
	Create(ctx context.Context, db *gorm.DB, p *Party) error
	Update(ctx context.Context, db *gorm.DB, p *Party) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
	DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error

	// UpdateCurrentBalance persists a freshly recomputed balance.
	UpdateCurrentBalance(ctx context.Context, db *gorm.DB, id string, balance decimal.Decimal) error
}

// TransactionRepository is the port for transaction persistence.
type TransactionRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Transaction, error)
	ListByProject(ctx context.Context, projectID string) ([]Transaction, error)

	// ListByParty returns the party's full history, unfiltered; the
	// balance sync depends on seeing every row.
	ListByParty(ctx context.Context, db *gorm.DB, partyID string) ([]Transaction, error)

	CountByParty(ctx context.Context, db *gorm.DB, partyID string) (int64, error)
	Create(ctx context.Context, db *gorm.DB, t *Transaction) error
	Update(ctx context.Context, db *gorm.DB, t *Transaction) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
	DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error
}

// AttachmentRepository stores receipt images.
type AttachmentRepository interface {
	FindByTransaction(ctx context.Context, txnID string) (*Attachment, error)
	Replace(ctx context.Context, db *gorm.DB, a *Attachment) error
	DeleteByTransaction(ctx context.Context, db *gorm.DB, txnID string) error

	// DeleteByProject removes the attachments of every transaction in
	// the project. Must run before the transactions themselves go.
	DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error
}
