package extractor

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
)

// Fields holds the four extracted values for a single message. A nil
// pointer means the field could not be determined; an empty string is
// never a valid present value, normalization happens before assignment.
type Fields struct {
	Bank         *string
	Amount       *decimal.Decimal
	Direction    *database.Direction
	Counterparty *string
}

// Complete reports whether rule-based extraction already produced all
// four fields, in which case the oracle call is skipped entirely.
func (f Fields) Complete() bool {
	return f.Bank != nil && f.Amount != nil && f.Direction != nil && f.Counterparty != nil
}

func (f Fields) Empty() bool {
	return f.Bank == nil && f.Amount == nil && f.Direction == nil && f.Counterparty == nil
}

// Merge combines rule-based and oracle fields. The rule-based value
// always wins when present: it is cheap, auditable and never
// hallucinates, so the oracle only fills gaps.
func Merge(rule, oracle Fields) Fields {
	bank, _ := lo.Coalesce(rule.Bank, oracle.Bank)
	amount, _ := lo.Coalesce(rule.Amount, oracle.Amount)
	direction, _ := lo.Coalesce(rule.Direction, oracle.Direction)
	counterparty, _ := lo.Coalesce(rule.Counterparty, oracle.Counterparty)

	return Fields{
		Bank:         bank,
		Amount:       amount,
		Direction:    direction,
		Counterparty: counterparty,
	}
}
