package extractor_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
	"github.com/skynet2/sms-transaction-importer/pkg/extractor"
)

func TestComplete(t *testing.T) {
	full := extractor.Fields{
		Bank:         lo.ToPtr("HDFC"),
		Amount:       lo.ToPtr(decimal.NewFromInt(36)),
		Direction:    lo.ToPtr(database.DirectionDebited),
		Counterparty: lo.ToPtr("BMTC BUS"),
	}

	assert.True(t, full.Complete())
	assert.False(t, extractor.Fields{}.Complete())

	partial := full
	partial.Counterparty = nil
	assert.False(t, partial.Complete())
}

func TestEmpty(t *testing.T) {
	assert.True(t, extractor.Fields{}.Empty())
	assert.False(t, extractor.Fields{Bank: lo.ToPtr("HDFC")}.Empty())
}

func TestMergePrefersRuleValues(t *testing.T) {
	rule := extractor.Fields{
		Bank:   lo.ToPtr("HDFC"),
		Amount: lo.ToPtr(decimal.NewFromInt(36)),
	}
	oracle := extractor.Fields{
		Bank:         lo.ToPtr("AXIS"),
		Amount:       lo.ToPtr(decimal.NewFromInt(100)),
		Direction:    lo.ToPtr(database.DirectionDebited),
		Counterparty: lo.ToPtr("SOME SHOP"),
	}

	merged := extractor.Merge(rule, oracle)

	assert.Equal(t, "HDFC", *merged.Bank)
	assert.Equal(t, "36", merged.Amount.String())
	assert.Equal(t, database.DirectionDebited, *merged.Direction)
	assert.Equal(t, "SOME SHOP", *merged.Counterparty)
}

func TestMergeBothAbsent(t *testing.T) {
	merged := extractor.Merge(extractor.Fields{}, extractor.Fields{})

	assert.True(t, merged.Empty())
}
