package extractor

import (
	"strings"

	"github.com/samber/lo"

	"github.com/skynet2/sms-transaction-importer/pkg/database"
)

// Promotional, informational and future-tense markers. Any hit means the
// message does not confirm money movement, so no direction is returned
// even when debit or credit keywords co-occur.
var exclusionKeywords = []string{
	"invest", "fd", "fixed deposit", "loan offer", "book now",
	"apply now", "mandate created", "mandate has been created",
	"towards", "scheduled", "authorization",
	"pre-approved", "otp", "reminder",
}

// Plain substring matches without word boundaries, same as the keyword
// heuristics elsewhere in this package. "paid" inside a longer word
// would false-positive; accepted precision limitation.
var (
	debitKeywords  = []string{"sent", "debited", "paid", "transferred", "withdrawn", "purchase"}
	creditKeywords = []string{"received", "credited", "deposited", "refund", "cashback"}
)

func (e *Extractor) Direction(body string) *database.Direction {
	lower := strings.ToLower(body)

	for _, keyword := range exclusionKeywords {
		if strings.Contains(lower, keyword) {
			return nil
		}
	}

	for _, keyword := range debitKeywords {
		if strings.Contains(lower, keyword) {
			return lo.ToPtr(database.DirectionDebited)
		}
	}

	for _, keyword := range creditKeywords {
		if strings.Contains(lower, keyword) {
			return lo.ToPtr(database.DirectionCredited)
		}
	}

	return nil
}
