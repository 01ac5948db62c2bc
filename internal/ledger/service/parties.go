package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

// ListParties returns a project's parties ordered by name.
func (s *LedgerService) ListParties(ctx context.Context, projectID string) ([]domain.Party, error) {
	return s.partyRepo.ListByProject(ctx, projectID)
}

// GetParty fetches one party.
func (s *LedgerService) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return s.partyRepo.FindByID(ctx, s.db, id)
}

// CreateParty registers a counter-party. With no history yet, the
// current balance is exactly the opening balance.
func (s *LedgerService) CreateParty(ctx context.Context, projectID string, p *domain.Party) (*domain.Party, error) {
	p.ID = uuid.NewString()
	p.ProjectID = projectID
	if !p.Type.IsValid() {
		p.Type = domain.PartySupplier
	}
	p.CurrentBalance = p.OpeningBalance

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.partyRepo.Create(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PartyUpdate carries a party's editable fields.
type PartyUpdate struct {
	Name           string
	Type           domain.PartyType
	Phone          string
	Address        string
	OpeningBalance decimal.Decimal
}

// UpdateParty edits a party's details. The opening balance feeds the
// balance recurrence, so every edit is followed by a full resync.
func (s *LedgerService) UpdateParty(ctx context.Context, id string, upd PartyUpdate) (*domain.Party, error) {
	var updated *domain.Party

	err := s.db.Transaction(func(tx *gorm.DB) error {
		party, err := s.partyRepo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}

		party.Name = upd.Name
		if upd.Type.IsValid() {
			party.Type = upd.Type
		}
		party.Phone = upd.Phone
		party.Address = upd.Address
		party.OpeningBalance = upd.OpeningBalance

		if err := s.partyRepo.Update(ctx, tx, party); err != nil {
			return err
		}
		if err := s.syncPartyBalance(ctx, tx, id); err != nil {
			return err
		}

		updated = party
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteParty removes a party. A party with recorded transactions is
// never deleted; the check and the delete share one transaction so a
// concurrent insert cannot slip between them.
func (s *LedgerService) DeleteParty(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.partyRepo.FindByID(ctx, tx, id); err != nil {
			return err
		}

		count, err := s.txRepo.CountByParty(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrPartyHasTransactions
		}

		return s.partyRepo.Delete(ctx, tx, id)
	})
}
