package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

// Processor drives a conversion run: pending messages are handled
// strictly oldest-first, one at a time, and every message reaches a
// terminal state exactly once. A failure inside one message never
// aborts the batch.
type Processor struct {
	repo      Repo
	extractor Extractor
	oracle    Oracle
}

func NewProcessor(
	repo Repo,
	ex Extractor,
	oracle Oracle,
) *Processor {
	return &Processor{
		repo:      repo,
		extractor: ex,
		oracle:    oracle,
	}
}

func (p *Processor) ConvertAll(ctx context.Context) (*RunSummary, error) {
	messages, err := p.repo.GetPendingMessages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch pending messages")
	}

	summary := &RunSummary{
		Status:        StatusSuccess,
		TotalMessages: len(messages),
	}

	if len(messages) == 0 {
		summary.Message = "no pending messages found"
		return summary, nil
	}

	zerolog.Ctx(ctx).Info().Int("count", len(messages)).Msg("starting conversion run")

	for _, message := range messages {
		if msgErr := p.processMessage(ctx, message, summary); msgErr != nil {
			zerolog.Ctx(ctx).Error().Err(msgErr).
				Str("user", message.UserName).
				Int64("smsId", message.SmsID).
				Msg("failed to process message")

			summary.FailedCount++
		}
	}

	summary.Message = fmt.Sprintf("conversion completed. processed: %d, failed: %d",
		summary.ProcessedCount, summary.FailedCount)

	zerolog.Ctx(ctx).Info().
		Int("processed", summary.ProcessedCount).
		Int("failed", summary.FailedCount).
		Int("oracleCalls", summary.OracleCallsMade).
		Msg("conversion run completed")

	return summary, nil
}

func (p *Processor) processMessage(
	ctx context.Context,
	message *database.Message,
	summary *RunSummary,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("panic while processing message: %v", r)
		}
	}()

	fields := p.extractor.Extract(message.Body, message.Address)

	if fields.Complete() {
		summary.OracleCallsSkipped++
	} else {
		oracleFields, oracleName := p.oracle.Extract(ctx, message.Body, message.Address)
		summary.OracleCallsMade++

		if oracleName != "" {
			zerolog.Ctx(ctx).Debug().
				Str("oracle", oracleName).
				Int64("smsId", message.SmsID).
				Msg("oracle consulted for missing fields")
		}

		fields = extractor.Merge(fields, oracleFields)
	}

	if fields.Empty() {
		zerolog.Ctx(ctx).Warn().
			Int64("smsId", message.SmsID).
			Msg("no data extracted, marking as processed anyway")

		if err = p.repo.MarkProcessed(ctx, message.UserName, message.SmsID); err != nil {
			return errors.Wrap(err, "failed to mark message as processed")
		}

		summary.FailedCount++

		return nil
	}

	inserted, err := p.repo.InsertTransactionIfAbsent(ctx, &database.Transaction{
		ID:           uuid.NewString(),
		UserName:     message.UserName,
		SmsID:        message.SmsID,
		Address:      message.Address,
		Bank:         fields.Bank,
		Amount:       fields.Amount,
		Direction:    fields.Direction,
		Counterparty: fields.Counterparty,
		DateReceived: message.DateReceived,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// persistence failure is terminal too: the message is consumed
		// so it is never reprocessed automatically
		if markErr := p.repo.MarkProcessed(ctx, message.UserName, message.SmsID); markErr != nil {
			zerolog.Ctx(ctx).Error().Err(markErr).
				Int64("smsId", message.SmsID).
				Msg("failed to mark message after insert failure")
		}

		return errors.Wrap(err, "failed to insert transaction")
	}

	if !inserted {
		zerolog.Ctx(ctx).Info().
			Int64("smsId", message.SmsID).
			Msg("transaction already exists, skipping insert")
	}

	if err = p.repo.MarkProcessed(ctx, message.UserName, message.SmsID); err != nil {
		return errors.Wrap(err, "failed to mark message as processed")
	}

	summary.ProcessedCount++

	return nil
}
