package extractor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Ordered currency-prefixed amount patterns. Rs.36.00, Rs 36, INR 1,234.50
// and the rupee symbol are all in circulation across bank senders.
var amountRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)INR\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
	regexp.MustCompile(`₹\s*(\d+(?:,\d+)*(?:\.\d{2})?)`),
}

func (e *Extractor) Amount(body string) *decimal.Decimal {
	for _, re := range amountRegexes {
		matches := re.FindStringSubmatch(body)
		if len(matches) != 2 {
			continue
		}

		amount, err := decimal.NewFromString(strings.ReplaceAll(matches[1], ",", ""))
		if err != nil {
			continue
		}

		return &amount
	}

	return nil
}
