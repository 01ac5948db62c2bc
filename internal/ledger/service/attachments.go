package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

// GetAttachment returns the receipt image for a transaction, or empty
// if none has been uploaded.
func (s *LedgerService) GetAttachment(ctx context.Context, txnID string) (string, error) {
	att, err := s.attRepo.FindByTransaction(ctx, txnID)
	if err != nil {
		return "", err
	}
	if att == nil {
		return "", nil
	}
	return att.ImageData, nil
}

// SetAttachment stores a receipt image for a transaction, replacing any
// previous one, and flips the transaction's attachment flag.
func (s *LedgerService) SetAttachment(ctx context.Context, txnID, imageData string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txn, err := s.txRepo.FindByID(ctx, tx, txnID)
		if err != nil {
			return err
		}

		att := &domain.Attachment{TransactionID: txnID, ImageData: imageData}
		if err := s.attRepo.Replace(ctx, tx, att); err != nil {
			return err
		}

		txn.HasAttachment = true
		return s.txRepo.Update(ctx, tx, txn)
	})
}

// DeleteAttachment removes a transaction's receipt image and clears the
// attachment flag.
func (s *LedgerService) DeleteAttachment(ctx context.Context, txnID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		txn, err := s.txRepo.FindByID(ctx, tx, txnID)
		if err != nil {
			return err
		}

		if err := s.attRepo.DeleteByTransaction(ctx, tx, txnID); err != nil {
			return err
		}

		txn.HasAttachment = false
		return s.txRepo.Update(ctx, tx, txn)
	})
}
