package repo

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, getMigrations())

	return m.Migrate()
}

func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "2025_08_10_Initial",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists sms_messages
(
    user_name     text    not null,
    sms_id        bigint  not null,
    address       text,
    body          text,
    date_received bigint,
    created_at    timestamp,
    is_processed  boolean default false,
    constraint sms_messages_pk
        primary key (user_name, sms_id)
);
`).Error
			},
		},
		{
			ID: "2025_08_10_Transactions",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create table if not exists transactions
(
    id            text,
    user_name     text   not null,
    sms_id        bigint not null,
    address       text,
    bank          text,
    amount        decimal,
    direction     text,
    counterparty  text,
    date_received bigint,
    created_at    timestamp,
    constraint transactions_pk
        primary key (user_name, sms_id)
);
`).Error
			},
		},
		{
			ID: "2025_08_17_PendingMessagesIndex",
			Migrate: func(db *gorm.DB) error {
				return db.Exec(`create index if not exists sms_messages_pending_idx
    on sms_messages (created_at)
    where is_processed = false;
`).Error
			},
		},
	}
}
