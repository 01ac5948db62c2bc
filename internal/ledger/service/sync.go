package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

// syncPartyBalance recomputes a party's cached balance from scratch:
// opening balance minus every purchase plus every payment, over the
// party's entire history. It is deliberately a full recompute rather
// than an incremental delta, so a missed or repeated call can never
// leave the stored balance drifted; rerunning it always converges on
// the same value. Runs inside the caller's transaction.
func (s *LedgerService) syncPartyBalance(ctx context.Context, tx *gorm.DB, partyID string) error {
	party, err := s.partyRepo.FindByID(ctx, tx, partyID)
	if err != nil {
		return fmt.Errorf("sync balance for party %s: %w", partyID, err)
	}

	txns, err := s.txRepo.ListByParty(ctx, tx, partyID)
	if err != nil {
		return fmt.Errorf("sync balance for party %s: %w", partyID, err)
	}

	totals := domain.LedgerTotalsOnly(party.OpeningBalance, txns, domain.PartyPerspective)
	return s.partyRepo.UpdateCurrentBalance(ctx, tx, partyID, totals.Closing)
}

// ResyncPartyBalance runs the balance sync in its own transaction.
// Idempotent: with no intervening mutation, repeated calls store the
// same value.
func (s *LedgerService) ResyncPartyBalance(ctx context.Context, partyID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.syncPartyBalance(ctx, tx, partyID)
	})
}
