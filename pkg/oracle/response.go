package oracle

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

// Oracle output is advisory: fields are coerced and validated and
// anything suspicious collapses to absent rather than propagating a
// hallucinated value.

type rawResponse struct {
	Bank            any `json:"bank"`
	Amount          any `json:"amount"`
	TransactionType any `json:"transaction_type"`
	Merchant        any `json:"merchant"`
}

var (
	codeFenceRegex   = regexp.MustCompile("^```(?:json)?\\s*")
	nonNumericRegex  = regexp.MustCompile(`[^\d.]`)
	implausibleLimit = decimal.NewFromInt(10_000_000)
)

// ParseResponse extracts the first {...} span from the oracle's reply
// and maps it onto Fields. A reply without parseable JSON is a
// malformed-response error; retrying would replay the same formatting
// bug, so the caller treats it as all-absent instead.
func ParseResponse(ctx context.Context, text string) (extractor.Fields, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = codeFenceRegex.ReplaceAllString(text, "")
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return extractor.Fields{}, errors.New("no JSON object in oracle response")
	}

	var raw rawResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return extractor.Fields{}, errors.Wrap(err, "failed to parse oracle response")
	}

	return extractor.Fields{
		Bank:         normalizeString(raw.Bank),
		Amount:       normalizeAmount(ctx, raw.Amount),
		Direction:    normalizeDirection(raw.TransactionType),
		Counterparty: normalizeString(raw.Merchant),
	}, nil
}

// "null", "none" and empty strings are the model's ways of saying
// absent; they must never survive as present values.
func normalizeString(value any) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}

	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none":
		return nil
	}

	return &s
}

func normalizeDirection(value any) *database.Direction {
	s := normalizeString(value)
	if s == nil {
		return nil
	}

	switch database.Direction(strings.ToLower(*s)) {
	case database.DirectionDebited:
		return lo.ToPtr(database.DirectionDebited)
	case database.DirectionCredited:
		return lo.ToPtr(database.DirectionCredited)
	case database.DirectionOther:
		return lo.ToPtr(database.DirectionOther)
	}

	return nil
}

func normalizeAmount(ctx context.Context, value any) *decimal.Decimal {
	var amount decimal.Decimal

	switch v := value.(type) {
	case float64:
		amount = decimal.NewFromFloat(v)
	case string:
		cleaned := nonNumericRegex.ReplaceAllString(v, "")
		if cleaned == "" {
			return nil
		}

		parsed, err := decimal.NewFromString(cleaned)
		if err != nil {
			return nil
		}
		amount = parsed
	case nil:
		return nil
	default:
		zerolog.Ctx(ctx).Warn().Msgf("unexpected amount type %v", spew.Sdump(value))
		return nil
	}

	if !amount.IsPositive() {
		return nil
	}

	if amount.GreaterThan(implausibleLimit) {
		zerolog.Ctx(ctx).Warn().Str("amount", amount.String()).Msg("implausibly large amount from oracle")
	}

	return &amount
}
