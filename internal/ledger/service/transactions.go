package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

// ListTransactions returns a project's transactions, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	return s.txRepo.ListByProject(ctx, projectID)
}

// CreateTransaction records a new ledger entry. The insert and the
// owning party's balance resync commit together; an invalid party id
// rolls the whole entry back instead of being silently ignored.
func (s *LedgerService) CreateTransaction(ctx context.Context, projectID string, t *domain.Transaction) (*domain.Transaction, error) {
	t.ID = uuid.NewString()
	t.ProjectID = projectID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.txRepo.Create(ctx, tx, t); err != nil {
			return err
		}
		if t.PartyID != "" {
			return s.syncPartyBalance(ctx, tx, t.PartyID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// TransactionUpdate carries the editable fields of a transaction.
// Amounts arrive through domain.Amount so malformed input lands as zero.
type TransactionUpdate struct {
	Date           string
	VoucherNo      string
	PartyID        string
	PartyName      string
	Description    string
	Category       string
	SubCategory    string
	PurchaseAmount domain.Amount
	Credit         domain.Amount
	Debit          domain.Amount
	PaymentMode    string
	Reference      string
	Notes          string
	IsPaid         bool
}

// UpdateTransaction rewrites an entry's editable fields. If the edit
// moves the entry to a different party, both the old and the new party
// are resynced; otherwise just the owner.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id string, upd TransactionUpdate) (*domain.Transaction, error) {
	var updated *domain.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txn, err := s.txRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		previousParty := txn.PartyID

		txn.Date = upd.Date
		txn.VoucherNo = upd.VoucherNo
		txn.PartyID = upd.PartyID
		txn.PartyName = upd.PartyName
		txn.Description = upd.Description
		txn.Category = upd.Category
		txn.SubCategory = upd.SubCategory
		txn.PurchaseAmount = upd.PurchaseAmount.Decimal
		txn.Credit = upd.Credit.Decimal
		txn.Debit = upd.Debit.Decimal
		txn.PaymentMode = upd.PaymentMode
		txn.Reference = upd.Reference
		txn.Notes = upd.Notes
		txn.IsPaid = upd.IsPaid

		if err := s.txRepo.Update(ctx, tx, txn); err != nil {
			return err
		}

		if previousParty != "" && previousParty != txn.PartyID {
			if err := s.syncPartyBalance(ctx, tx, previousParty); err != nil {
				return err
			}
		}
		if txn.PartyID != "" {
			if err := s.syncPartyBalance(ctx, tx, txn.PartyID); err != nil {
				return err
			}
		}

		updated = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes an entry and its attachment, then resyncs
// the party it referenced. The party id is captured before the delete;
// after it the row is gone.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txn, err := s.txRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		partyID := txn.PartyID

		if err := s.attRepo.DeleteByTransaction(ctx, tx, id); err != nil {
			return err
		}
		if err := s.txRepo.Delete(ctx, tx, id); err != nil {
			return err
		}

		if partyID != "" {
			return s.syncPartyBalance(ctx, tx, partyID)
		}
		return nil
	})
}
