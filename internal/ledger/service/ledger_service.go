package service

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

// LedgerService owns the ledger core: transaction and party CRUD, the
// party balance sync, and the two running-balance views. It holds the
// root *gorm.DB so each mutation and the resync it triggers run inside
// one database transaction.
type LedgerService struct {
	db        *gorm.DB
	partyRepo domain.PartyRepository
	txRepo    domain.TransactionRepository
	attRepo   domain.AttachmentRepository
}

func NewLedgerService(
	db *gorm.DB,
	partyRepo domain.PartyRepository,
	txRepo domain.TransactionRepository,
	attRepo domain.AttachmentRepository,
) *LedgerService {
	return &LedgerService{
		db:        db,
		partyRepo: partyRepo,
		txRepo:    txRepo,
		attRepo:   attRepo,
	}
}

// PartyLedgerView is a party's full statement: every transaction that
// references the party, in chronological order, with running balances
// starting from the opening balance.
type PartyLedgerView struct {
	Party  domain.Party
	Lines  []domain.LedgerLine
	Totals domain.LedgerTotals
}

// CompanyFilter narrows the company ledger before the fold runs, so the
// running balance reflects only the selected subset.
type CompanyFilter struct {
	From string // inclusive, YYYY-MM-DD; empty = unbounded
	To   string // inclusive, YYYY-MM-DD; empty = unbounded
	Type string // "", "all", "purchases" or "payments"
}

// CompanyLedgerView is the project-wide cash-flow statement. It starts
// at zero; Net is credit minus debit over the filtered set.
type CompanyLedgerView struct {
	Lines  []domain.LedgerLine
	Totals domain.LedgerTotals
	Net    decimal.Decimal
}

// PartyLedger builds the statement for one party. Its closing balance
// always equals what the balance sync would store for the party at this
// instant, because both run the same fold over the same history.
func (s *LedgerService) PartyLedger(ctx context.Context, partyID string) (*PartyLedgerView, error) {
	party, err := s.partyRepo.FindByID(ctx, s.db, partyID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txRepo.ListByParty(ctx, s.db, partyID)
	if err != nil {
		return nil, err
	}

	lines, totals := domain.RunLedger(party.OpeningBalance, txns, domain.PartyPerspective)
	return &PartyLedgerView{Party: *party, Lines: lines, Totals: totals}, nil
}

// CompanyLedger builds the project cash-flow statement. Filtering
// happens before sorting and the fold.
func (s *LedgerService) CompanyLedger(ctx context.Context, projectID string, filter CompanyFilter) (*CompanyLedgerView, error) {
	txns, err := s.txRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		switch filter.Type {
		case "purchases":
			if t.Type != domain.EntryPurchase {
				continue
			}
		case "payments":
			if t.Type != domain.EntryPayment {
				continue
			}
		}
		// YYYY-MM-DD compares correctly as a string.
		if filter.From != "" && t.Date < filter.From {
			continue
		}
		if filter.To != "" && t.Date > filter.To {
			continue
		}
		filtered = append(filtered, t)
	}

	lines, totals := domain.RunLedger(decimal.Zero, filtered, domain.CompanyPerspective)
	return &CompanyLedgerView{
		Lines:  lines,
		Totals: totals,
		Net:    totals.Credit.Sub(totals.Debit),
	}, nil
}
