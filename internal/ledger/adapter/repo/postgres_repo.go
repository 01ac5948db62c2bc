package repo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
)

type PostgresPartyRepo struct {
	db *gorm.DB
}

func NewPartyRepo(db *gorm.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{db: db}
}

func (r *PostgresPartyRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Party, error) {
	var party domain.Party
	if err := db.WithContext(ctx).Where("id = ?", id).First(&party).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, err
	}
	return &party, nil
}

func (r *PostgresPartyRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Party, error) {
	var parties []domain.Party
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&parties).Error
	return parties, err
}

func (r *PostgresPartyRepo) Create(ctx context.Context, db *gorm.DB, p *domain.Party) error {
	return db.WithContext(ctx).Create(p).Error
}

func (r *PostgresPartyRepo) Update(ctx context.Context, db *gorm.DB, p *domain.Party) error {
	return db.WithContext(ctx).Save(p).Error
}

func (r *PostgresPartyRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Party{}, "id = ?", id).Error
}

func (r *PostgresPartyRepo) DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error {
	return db.WithContext(ctx).Delete(&domain.Party{}, "project_id = ?", projectID).Error
}

func (r *PostgresPartyRepo) UpdateCurrentBalance(ctx context.Context, db *gorm.DB, id string, balance decimal.Decimal) error {
	result := db.WithContext(ctx).Model(&domain.Party{}).
		Where("id = ?", id).
		Update("current_balance", balance)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

// ---------------------------------------------------------

type PostgresTransactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) *PostgresTransactionRepo {
	return &PostgresTransactionRepo{db: db}
}

func (r *PostgresTransactionRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := db.WithContext(ctx).Where("id = ?", id).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *PostgresTransactionRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC, created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *PostgresTransactionRepo) ListByParty(ctx context.Context, db *gorm.DB, partyID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("date ASC, created_at ASC").
		Find(&txns).Error
	return txns, err
}

func (r *PostgresTransactionRepo) CountByParty(ctx context.Context, db *gorm.DB, partyID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("party_id = ?", partyID).
		Count(&count).Error
	return count, err
}

func (r *PostgresTransactionRepo) Create(ctx context.Context, db *gorm.DB, t *domain.Transaction) error {
	return db.WithContext(ctx).Create(t).Error
}

func (r *PostgresTransactionRepo) Update(ctx context.Context, db *gorm.DB, t *domain.Transaction) error {
	return db.WithContext(ctx).Save(t).Error
}

func (r *PostgresTransactionRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Transaction{}, "id = ?", id).Error
}

func (r *PostgresTransactionRepo) DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error {
	return db.WithContext(ctx).Delete(&domain.Transaction{}, "project_id = ?", projectID).Error
}

// ---------------------------------------------------------

type PostgresAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *PostgresAttachmentRepo {
	return &PostgresAttachmentRepo{db: db}
}

func (r *PostgresAttachmentRepo) FindByTransaction(ctx context.Context, txnID string) (*domain.Attachment, error) {
	var att domain.Attachment
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", txnID).First(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

func (r *PostgresAttachmentRepo) Replace(ctx context.Context, db *gorm.DB, a *domain.Attachment) error {
	if err := db.WithContext(ctx).
		Delete(&domain.Attachment{}, "transaction_id = ?", a.TransactionID).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Create(a).Error
}

func (r *PostgresAttachmentRepo) DeleteByTransaction(ctx context.Context, db *gorm.DB, txnID string) error {
	return db.WithContext(ctx).Delete(&domain.Attachment{}, "transaction_id = ?", txnID).Error
}

func (r *PostgresAttachmentRepo) DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error {
	sub := db.Model(&domain.Transaction{}).Select("id").Where("project_id = ?", projectID)
	return db.WithContext(ctx).
		Where("transaction_id IN (?)", sub).
		Delete(&domain.Attachment{}).Error
}
