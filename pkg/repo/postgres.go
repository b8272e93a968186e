package repo

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
)

type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) (*Postgres, error) {
	if err := migrate(db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate")
	}

	return &Postgres{
		db: db,
	}, nil
}

func (p *Postgres) GetPendingMessages(ctx context.Context) ([]*database.Message, error) {
	var messages []*database.Message

	// oldest first to preserve chronological processing order
	if err := p.db.WithContext(ctx).
		Where("is_processed = false").
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch pending messages")
	}

	return messages, nil
}

func (p *Postgres) AddMessages(ctx context.Context, messages []database.Message) error {
	if len(messages) == 0 {
		return nil
	}

	// re-synced messages are silently skipped
	if err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&messages).Error; err != nil {
		return errors.Wrap(err, "failed to add messages")
	}

	return nil
}

func (p *Postgres) InsertTransactionIfAbsent(
	ctx context.Context,
	tx *database.Transaction,
) (bool, error) {
	result := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_name"}, {Name: "sms_id"}},
			DoNothing: true,
		}).
		Create(tx)
	if result.Error != nil {
		return false, errors.WithStack(result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (p *Postgres) MarkProcessed(
	ctx context.Context,
	userName string,
	smsID int64,
) error {
	result := p.db.WithContext(ctx).
		Model(&database.Message{}).
		Where("user_name = ? and sms_id = ?", userName, smsID).
		Update("is_processed", true)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.Newf("message %v/%v not found", userName, smsID)
	}

	return nil
}

func (p *Postgres) GetMessages(
	ctx context.Context,
	userName string,
) ([]*database.Message, error) {
	var messages []*database.Message

	if err := p.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return messages, nil
}

func (p *Postgres) GetTransactions(
	ctx context.Context,
	userName string,
) ([]*database.Transaction, error) {
	var transactions []*database.Transaction

	if err := p.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Order("date_received desc").
		Find(&transactions).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return transactions, nil
}
