package processor

import (
	"context"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package processor_test -source=interfaces.go

type Repo interface {
	GetPendingMessages(ctx context.Context) ([]*database.Message, error)
	InsertTransactionIfAbsent(ctx context.Context, tx *database.Transaction) (bool, error)
	MarkProcessed(ctx context.Context, userName string, smsID int64) error
}

type Extractor interface {
	Extract(body string, address string) extractor.Fields
}

type Oracle interface {
	Extract(ctx context.Context, body string, address string) (extractor.Fields, string)
}
