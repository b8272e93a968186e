package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// Message is a raw SMS notification as delivered by the sync client.
// DateReceived is the on-device receipt time in epoch milliseconds.
type Message struct {
	UserName     string    `json:"userName" gorm:"column:user_name;primaryKey"`
	SmsID        int64     `json:"smsId" gorm:"column:sms_id;primaryKey"`
	Address      string    `json:"address" gorm:"column:address"`
	Body         string    `json:"body" gorm:"column:body"`
	DateReceived int64     `json:"dateReceived" gorm:"column:date_received"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
	IsProcessed  bool      `json:"isProcessed" gorm:"column:is_processed"`
}

func (Message) TableName() string {
	return "sms_messages"
}

type Direction string

const (
	DirectionDebited  = Direction("debited")
	DirectionCredited = Direction("credited")
	DirectionOther    = Direction("other")
)

// Transaction is the extracted record persisted per message.
// Unique on (user_name, sms_id); inserted once, never updated.
type Transaction struct {
	ID           string           `json:"id" gorm:"column:id"`
	UserName     string           `json:"userName" gorm:"column:user_name;primaryKey"`
	SmsID        int64            `json:"smsId" gorm:"column:sms_id;primaryKey"`
	Address      string           `json:"address" gorm:"column:address"`
	Bank         *string          `json:"bank" gorm:"column:bank"`
	Amount       *decimal.Decimal `json:"amount" gorm:"column:amount"`
	Direction    *Direction       `json:"direction" gorm:"column:direction"`
	Counterparty *string          `json:"counterparty" gorm:"column:counterparty"`
	DateReceived int64            `json:"dateReceived" gorm:"column:date_received"`
	CreatedAt    time.Time        `json:"createdAt" gorm:"column:created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
