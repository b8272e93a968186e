package main

import (
	"context"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/processor"
)

type Converter interface {
	ConvertAll(ctx context.Context) (*processor.RunSummary, error)
}

type DataRepo interface {
	processor.Repo

	AddMessages(ctx context.Context, messages []database.Message) error
	GetMessages(ctx context.Context, userName string) ([]*database.Message, error)
	GetTransactions(ctx context.Context, userName string) ([]*database.Transaction, error)
}
